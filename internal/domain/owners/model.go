package owners

import "time"

// Owner representa al dueño de una o más mascotas registradas en la clínica.
type Owner struct {
	ID int64

	FirstName string
	LastName  string
	Address   string
	Phone     string
	Email     string

	RegisteredAt time.Time
}

func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}
