package szl

// RegisterCommand binds name in the global frame as a callable Value.
// maxArgc of -1 means unbounded. This is the single entry point
// external command packages use at init time; package builtins (and
// any third-party package) goes through this same call.
func (ip *Interp) RegisterCommand(name string, minArgc, maxArgc int, help string, handler Handler) error {
	return ip.RegisterCommandPriv(name, minArgc, maxArgc, help, handler, nil, nil)
}

// RegisterCommandPriv is RegisterCommand with the private-data/destroy
// pair a stateful command needs.
func (ip *Interp) RegisterCommandPriv(name string, minArgc, maxArgc int, help string, handler Handler, priv any, destroy func(any)) error {
	cmd := NewCommand(name, handler, minArgc, maxArgc, help, priv, destroy)
	return ip.SetInGlobal(name, cmd)
}

// RegisterConstant binds a read-only Value under name in the global
// frame.
func (ip *Interp) RegisterConstant(name string, v *Value) error {
	v.SetReadOnly()
	return ip.SetInGlobal(name, v)
}

// Export is one entry of an extension bundle installed by
// RegisterExtension. Exactly one of Handler or Const should be set.
type Export struct {
	Name    string
	MinArgc int
	MaxArgc int
	Help    string
	Handler Handler
	Const   *Value
}

// RegisterExtension installs a named bundle of commands/constants and
// records the extension as loaded. Exports are installed one at a
// time; if one fails, those installed before it stay installed and the
// extension is not recorded.
func (ip *Interp) RegisterExtension(name string, exports []Export) error {
	for _, e := range exports {
		if e.Handler != nil {
			if err := ip.RegisterCommand(e.Name, e.MinArgc, e.MaxArgc, e.Help, e.Handler); err != nil {
				return err
			}
			continue
		}
		if err := ip.RegisterConstant(e.Name, e.Const); err != nil {
			return err
		}
	}
	ip.exts[name] = true
	ip.Logger.Printf("loaded extension %s (%d exports)", name, len(exports))
	return nil
}

// Extensions reports the names of loaded extensions.
func (ip *Interp) Extensions() []string {
	names := make([]string, 0, len(ip.exts))
	for n := range ip.exts {
		names = append(names, n)
	}
	return names
}
