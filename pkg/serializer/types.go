package serializer

// Serializer is an interface for writing structured data in some format.
type Serializer interface {
	Serialize(v any) error
}

// Closer is an optional interface that Serializers implement when they
// hold resources such as file handles.
type Closer interface {
	Close() error
}
