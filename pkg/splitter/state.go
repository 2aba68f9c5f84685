package splitter

// State is the position of the control in its open/close cycle.
type State int

const (
	StateClosed  State = iota // At rest, only the main control is visible
	StateOpening              // Reveal animations in flight
	StateOpen                 // Sub-elements and dismissal control are interactive
	StateClosing              // Dismissal animations in flight
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Hit is what a pointer position resolved to.
type Hit int

const (
	HitNone    Hit = iota
	HitMain        // The main control, while closed
	HitElement     // A sub-element, while open
	HitDismiss     // The dismissal control, while open
)

func (h Hit) String() string {
	switch h {
	case HitMain:
		return "main"
	case HitElement:
		return "element"
	case HitDismiss:
		return "dismiss"
	default:
		return "none"
	}
}
