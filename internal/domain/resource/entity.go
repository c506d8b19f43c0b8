package resource

const lockNamespace = "appointments:"

// Resource is a bookable capacity unit. Appointments on the same resource must not overlap.
type Resource struct {
	key  string
	name string
}

// Showroom is the dealership's single implicit pool: one appointment at a time.
var Showroom = Resource{key: "showroom", name: "Dealership showroom"}

func (r Resource) Name() string { return r.name }

// LockKey names the lock that serializes booking writes on this resource.
func (r Resource) LockKey() string {
	return lockNamespace + r.key
}
