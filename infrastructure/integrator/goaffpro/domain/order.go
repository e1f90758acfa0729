package goaffprodomain

type Customer struct {
	ID    *int64  `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type Order struct {
	ID            *int64     `json:"id,omitempty"`
	AffiliateID   *int64     `json:"affiliate_id,omitempty"`
	Created       string     `json:"created,omitempty"`
	Customer      *Customer  `json:"customer,omitempty"`
	CustomerEmail *string    `json:"customer_email,omitempty"`
	Total         FlexNumber `json:"total,omitempty"`
	Subtotal      FlexNumber `json:"subtotal,omitempty"`
}

// HasAffiliate indica se o pedido está atribuído a um afiliado.
func (o Order) HasAffiliate() bool {
	return o.AffiliateID != nil && *o.AffiliateID != 0
}
