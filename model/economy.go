package model

// Payslip is the breakdown of a collected salary.
type Payslip struct {
	RoleID      string `json:"role_id,omitempty"`
	Gross       int64  `json:"gross"`
	Tax         int64  `json:"tax"`
	Net         int64  `json:"net"`
	CardBalance int64  `json:"card_balance"`
}

// Purchase is the outcome of buying one shop item.
type Purchase struct {
	Item        string `json:"item"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	CardBalance int64  `json:"card_balance"`
}

// ItemTransfer is the outcome of handing items to another identity.
type ItemTransfer struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Left     int    `json:"left"`
}

// Theft is the outcome of an attempt to steal one unit of an item.
type Theft struct {
	Thief   string `json:"thief"`
	Target  string `json:"target"`
	Item    string `json:"item"`
	Success bool   `json:"success"`
}

// Inventory maps item name to the number of units held.
type Inventory map[string]int
