package params

// Destination is where an unreferenced parameter lands on the root element.
type Destination struct {
	attribute string
}

// ToContent routes a parameter into the element content.
func ToContent() Destination {
	return Destination{}
}

// ToAttribute routes a parameter into the named attribute.
func ToAttribute(name string) Destination {
	return Destination{attribute: name}
}

// IsContent reports whether the destination is element content.
func (d Destination) IsContent() bool {
	return d.attribute == ""
}

// Attribute returns the destination attribute name, empty for content.
func (d Destination) Attribute() string {
	return d.attribute
}

func (d Destination) String() string {
	if d.IsContent() {
		return "content"
	}
	return "attribute:" + d.attribute
}

// Parameter is a named value with a default destination. A parameter without a
// value is still matched by markers but never written.
type Parameter struct {
	Name    string
	Value   string
	Present bool
	Default Destination

	referenced bool
}

// Content builds a parameter destined for element content.
func Content(name, value string) Parameter {
	return Parameter{Name: name, Value: value, Present: true, Default: ToContent()}
}

// Attribute builds a parameter destined for the named attribute.
func Attribute(name, value, attribute string) Parameter {
	return Parameter{Name: name, Value: value, Present: true, Default: ToAttribute(attribute)}
}

// OptionalAttribute builds an attribute parameter that only carries a value
// when value is non-nil.
func OptionalAttribute(name string, value *string, attribute string) Parameter {
	p := Parameter{Name: name, Default: ToAttribute(attribute)}
	if value != nil {
		p.Value = *value
		p.Present = true
	}
	return p
}

// Referenced reports whether a marker consumed the parameter during Apply.
func (p Parameter) Referenced() bool {
	return p.referenced
}

// Set is an ordered collection of parameters keyed by name. Fallback writes
// follow insertion order.
type Set struct {
	params []*Parameter
	index  map[string]int
}

// NewSet builds a Set. Later duplicates replace earlier ones in place.
func NewSet(params ...Parameter) *Set {
	s := &Set{index: make(map[string]int, len(params))}
	for _, p := range params {
		s.Add(p)
	}
	return s
}

// Add inserts or replaces a parameter.
func (s *Set) Add(p Parameter) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	copied := p
	if i, ok := s.index[p.Name]; ok {
		s.params[i] = &copied
		return
	}
	s.index[p.Name] = len(s.params)
	s.params = append(s.params, &copied)
}

// Lookup returns the parameter registered under name.
func (s *Set) Lookup(name string) (Parameter, bool) {
	p := s.lookup(name)
	if p == nil {
		return Parameter{}, false
	}
	return *p, true
}

// Len returns the number of parameters.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.params)
}

func (s *Set) lookup(name string) *Parameter {
	if s == nil {
		return nil
	}
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.params[i]
}
