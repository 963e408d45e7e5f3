package fixedpoint

func Sum(values []Value) (s Value) {
	s = Zero
	for _, value := range values {
		s = s.Add(value)
	}
	return s
}

// NewPtr returns a pointer to a copy of v, for the nullable *Value fields.
func NewPtr(v Value) *Value {
	return &v
}
