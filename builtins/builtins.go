// Package builtins implements the minimal self-hosted standard
// library szl's end-to-end scenarios require: core variable
// operations, arithmetic, lists, dicts, procedures/control flow, and
// string/IO commands. Every command is registered through the same
// Interp.RegisterCommand contract an external package would use, so
// this package doubles as a worked example of the registry for third
// parties.
package builtins

import "github.com/szl-lang/szl"

// Register installs every builtin command and constant into ip.
func Register(ip *szl.Interp) error {
	for _, reg := range []func(*szl.Interp) error{
		registerCore,
		registerArith,
		registerList,
		registerDict,
		registerProc,
		registerStr,
	} {
		if err := reg(ip); err != nil {
			return err
		}
	}
	return nil
}
