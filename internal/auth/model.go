package auth

// PortalType identifies one of the role based entry points.
type PortalType string

const (
	PortalStudent PortalType = "student"
	PortalAdmin   PortalType = "admin"
	PortalCanteen PortalType = "canteen"
)

// Portal is a card on the portal selector.
type Portal struct {
	Type        PortalType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
}

var Portals = []Portal{
	{Type: PortalStudent, Title: "Student Portal", Description: "Order food from canteen", Icon: "users"},
	{Type: PortalAdmin, Title: "Admin Portal", Description: "Manage canteen operations", Icon: "shield"},
	{Type: PortalCanteen, Title: "Canteen Staff", Description: "Process & deliver orders", Icon: "chef-hat"},
}

type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
}

// LoginForm is what the client renders once a portal is selected.
type LoginForm struct {
	Portal Portal      `json:"portal"`
	Fields []FormField `json:"fields"`
	Submit string      `json:"submit"`
	Back   string      `json:"back"`
}

var credentialFields = []FormField{
	{Name: "id_number", Label: "ID Number", Type: "text", Placeholder: "Enter your ID"},
	{Name: "password", Label: "Password", Type: "password", Placeholder: "Enter your password"},
}

// LoginResult is returned for a successful student login.
type LoginResult struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt int64  `json:"expires_at"`
	Redirect  string `json:"redirect"`
}

// Header is the top bar of the menu page.
type Header struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	IDNumber           string `json:"id_number"`
	WalletBalance      int64  `json:"wallet_balance"`
	WalletBalanceLabel string `json:"wallet_balance_label"`
	CartBadge          int    `json:"cart_badge,omitempty"`
}
