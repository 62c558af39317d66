package schema

// Related is the minimal {id, name} reference used wherever a full nested
// object is unnecessary. It keeps response payload size independent of
// relation depth: a mining session entry references its ore this way
// instead of embedding the whole ore.
type Related struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
