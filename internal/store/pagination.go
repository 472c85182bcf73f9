package store

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// ListOptions carries offset pagination for the listing queries. No upper
// bound is enforced on Limit; callers may request arbitrarily large pages.
type ListOptions struct {
	Limit  int64
	Offset int64
}

func (o ListOptions) normalized() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Offset < 0 {
		o.Offset = DefaultOffset
	}
	return o
}
