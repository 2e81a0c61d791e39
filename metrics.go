package dynarray

import "unsafe"

// ArrayMetrics contains statistical information about an array's storage.
type ArrayMetrics struct {
	Len           int     // Live elements
	Cap           int     // Slots in the owned buffer
	ElemSize      int     // Bytes per slot
	BytesLive     int     // Bytes occupied by live elements
	BytesReserved int     // Bytes held by the buffer overall
	Utilization   float64 // Ratio of live to total slots (0.0-1.0)
}

// Metrics returns a snapshot of storage statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	m := ArrayMetrics{
		Len:           a.size,
		Cap:           a.data.capacity(),
		ElemSize:      elemSize,
		BytesLive:     a.size * elemSize,
		BytesReserved: a.data.capacity() * elemSize,
	}
	if m.Cap > 0 {
		m.Utilization = float64(m.Len) / float64(m.Cap)
	}
	return m
}
