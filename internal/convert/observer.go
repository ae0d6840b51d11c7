package convert

// Observer receives human-readable progress while a conversion runs. It is
// reporting only: diagnostics that affect the result go to the warnings and
// errors lists, never through here.
type Observer interface {
	Progress(step, detail string)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(step, detail string)

func (f ObserverFunc) Progress(step, detail string) {
	f(step, detail)
}

type nopObserver struct{}

func (nopObserver) Progress(string, string) {}

// NopObserver discards all progress events; it is the default.
var NopObserver Observer = nopObserver{}
