package orders

type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusDelivered Status = "DELIVERED"
)

// Transisi maju saja; REJECTED dan DELIVERED terminal.
var validNext = map[Status]map[Status]bool{
	StatusCreated:   {StatusAccepted: true, StatusRejected: true},
	StatusAccepted:  {StatusDelivered: true},
	StatusRejected:  {},
	StatusDelivered: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}
