package booking

// Form holds what the user has entered into the flight booker along with the
// validity derived from it. Every setter recomputes the validity from scratch.
type Form struct {
	outbound string
	inbound  string
	validity Validity
	ft       FlightType
}

// NewForm returns a form for the given flight type with both dates set to
// date. This mirrors a booker that pre-fills today's date.
func NewForm(ft FlightType, date string) *Form {
	f := &Form{
		ft:       ft,
		outbound: date,
		inbound:  date,
	}

	f.evaluate()

	return f
}

func (f *Form) evaluate() {
	f.validity = Evaluate(f.ft, f.outbound, f.inbound)
}

// SetType changes the flight type.
func (f *Form) SetType(ft FlightType) {
	f.ft = ft
	f.evaluate()
}

// SetOutbound replaces the outbound date text.
func (f *Form) SetOutbound(s string) {
	f.outbound = s
	f.evaluate()
}

// SetInbound replaces the inbound date text. The inbound field is read-only
// for one-way flights so the edit is ignored and false is returned.
func (f *Form) SetInbound(s string) bool {
	if f.ft != Return {
		return false
	}

	f.inbound = s
	f.evaluate()

	return true
}

func (f *Form) Type() FlightType {
	return f.ft
}

func (f *Form) Outbound() string {
	return f.outbound
}

func (f *Form) Inbound() string {
	return f.inbound
}

func (f *Form) Validity() Validity {
	return f.validity
}
