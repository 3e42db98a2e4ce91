package navigator

// Func adapts a plain function to the login.Navigator port. The CLI wires it
// to its screen switch; tests wire it to a recorder.
type Func func(path string)

func (f Func) GoTo(path string) {
	f(path)
}
