package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// contactFlags binds the four record fields to command flags.
type contactFlags struct {
	name    string
	phone   string
	email   string
	address string
}

func (f *contactFlags) register(cmd *cobra.Command, nameUsage string) {
	cmd.Flags().StringVar(&f.name, "name", "", nameUsage)
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number (7-15 of digits, spaces, + - ( ))")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
}

// record returns the flag values as a trimmed record.
func (f *contactFlags) record() types.Record {
	return types.Normalize(types.Record{
		Name:    f.name,
		Phone:   f.phone,
		Email:   f.email,
		Address: f.address,
	})
}

// anyChanged reports whether the user set at least one field flag.
func (f *contactFlags) anyChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "phone", "email", "address"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// overlay returns base with every flag the user set replacing its field,
// trimmed.
func (f *contactFlags) overlay(cmd *cobra.Command, base types.Record) types.Record {
	if cmd.Flags().Changed("name") {
		base.Name = f.name
	}
	if cmd.Flags().Changed("phone") {
		base.Phone = f.phone
	}
	if cmd.Flags().Changed("email") {
		base.Email = f.email
	}
	if cmd.Flags().Changed("address") {
		base.Address = f.address
	}
	return types.Normalize(base)
}
