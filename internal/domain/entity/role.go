package entity

// Role names carried in tokens and on the Donneur record.
// "banque" signups are stored through the donneurs table; the role
// column is what distinguishes a bank operator from a plain donor.
const (
	RoleMedecin = "medecin"
	RoleDonneur = "donneur"
	RoleBanque  = "banque"
)
