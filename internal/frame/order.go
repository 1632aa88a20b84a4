package frame

// OrderProvider supplies the platform's caption button placement preference
// and notifies subscribers when it changes. Ordering sets are replaced
// wholesale, never edited in place.
type OrderProvider interface {
	// Order returns the current leading and trailing ordering sets.
	Order() (leading, trailing []ButtonKind)
	// Subscribe registers fn to run after the ordering changes. The
	// returned cancel releases the registration.
	Subscribe(fn func()) (cancel func())
}

// StaticOrderProvider is an in-process OrderProvider backed by plain
// slices. The desktop mutates it through SetOrder; tests use it as a fake
// platform preference store.
type StaticOrderProvider struct {
	leading  []ButtonKind
	trailing []ButtonKind
	subs     map[int]func()
	nextID   int
}

// NewStaticOrderProvider returns a provider holding the given sets.
func NewStaticOrderProvider(leading, trailing []ButtonKind) *StaticOrderProvider {
	return &StaticOrderProvider{
		leading:  append([]ButtonKind(nil), leading...),
		trailing: append([]ButtonKind(nil), trailing...),
		subs:     make(map[int]func()),
	}
}

// Order implements OrderProvider. The returned slices are copies.
func (p *StaticOrderProvider) Order() (leading, trailing []ButtonKind) {
	return append([]ButtonKind(nil), p.leading...),
		append([]ButtonKind(nil), p.trailing...)
}

// SetOrder replaces both ordering sets and notifies subscribers.
func (p *StaticOrderProvider) SetOrder(leading, trailing []ButtonKind) {
	p.leading = append([]ButtonKind(nil), leading...)
	p.trailing = append([]ButtonKind(nil), trailing...)
	for _, fn := range p.subs {
		fn()
	}
}

// Subscribe implements OrderProvider.
func (p *StaticOrderProvider) Subscribe(fn func()) (cancel func()) {
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	return func() { delete(p.subs, id) }
}
