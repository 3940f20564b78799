package vm

type Stack[T any] struct {
	stack []T
}

func (s *Stack[T]) Push(t T) {
	s.stack = append(s.stack, t)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.stack) == 0 {
		var zero T
		return zero, false
	}
	last := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return last, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.stack) == 0 {
		var zero T
		return zero, false
	}
	return s.stack[len(s.stack)-1], true
}
