package interpreter

// Frame holds the bindings of one lexical block, in declaration order.
type Frame struct {
	names  []string         // binding names in declaration order
	values map[string]Value // name -> current value
}

func newFrame() Frame {
	return Frame{values: make(map[string]Value)}
}

func (f *Frame) get(name string) (Value, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *Frame) has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Binding is a name and its value, as reported by Scope.Bindings.
type Binding struct {
	Name  string
	Value Value
}

// Scope is the stack of frames owned by one activation: the top-level
// program or a single function call. The last frame is the current one.
type Scope struct {
	frames []Frame
}

// NewScope returns a scope with a single empty frame.
func NewScope() *Scope {
	s := &Scope{frames: make([]Frame, 0, 4)}
	s.Push()
	return s
}

// Push appends an empty frame.
func (s *Scope) Push() {
	s.frames = append(s.frames, newFrame())
}

// Pop removes the current frame. Every Push must be paired with one Pop.
func (s *Scope) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of frames.
func (s *Scope) Depth() int {
	return len(s.frames)
}

// current returns the current frame
func (s *Scope) current() *Frame {
	return &s.frames[len(s.frames)-1]
}

// Bind declares name in the current frame only.
func (s *Scope) Bind(name string, v Value) error {
	f := s.current()
	if f.has(name) {
		return duplicateBinding(name)
	}
	f.names = append(f.names, name)
	f.values[name] = v
	return nil
}

// Assign replaces the value of name in the innermost frame declaring it.
func (s *Scope) Assign(name string, v Value) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].has(name) {
			s.frames[i].values[name] = v
			return nil
		}
	}
	return unknownVariable(name)
}

// Lookup returns the value of name from the innermost frame declaring it.
func (s *Scope) Lookup(name string) (Value, error) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].get(name); ok {
			return v, nil
		}
	}
	return Value{}, unknownVariable(name)
}

// Bindings lists every visible binding, outermost frame first and in
// declaration order within a frame. Shadowed bindings are left out.
func (s *Scope) Bindings() []Binding {
	out := []Binding{}
	for i, f := range s.frames {
		for _, name := range f.names {
			if s.shadowed(name, i) {
				continue
			}
			out = append(out, Binding{Name: name, Value: f.values[name]})
		}
	}
	return out
}

// shadowed reports whether a frame above index declares name
func (s *Scope) shadowed(name string, index int) bool {
	for j := index + 1; j < len(s.frames); j++ {
		if s.frames[j].has(name) {
			return true
		}
	}
	return false
}
