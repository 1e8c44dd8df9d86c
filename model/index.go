package model

// Entities lists every persisted model in migration order.
func Entities() []any {
	return []any{
		&Franchise{},
		&Movie{},
		&Character{},
	}
}

// ArrayId is the body of the relation assignment endpoints, a bare JSON array of ids.
type ArrayId []uint
