package services

// identified is implemented by records with a server-assigned integer ID
type identified interface {
	GetID() int
}

// nextID returns one past the highest ID in the collection, or 1 when it is
// empty. For an append-ordered collection this is the last ID plus one; for
// one that is out of order it still never reuses an ID.
func nextID[T identified](items []T) int {
	highest := 0
	for _, item := range items {
		if id := item.GetID(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// indexByID returns the position of the first record with id, or -1
func indexByID[T identified](items []T, id int) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
