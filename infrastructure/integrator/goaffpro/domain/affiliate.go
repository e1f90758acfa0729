package goaffprodomain

// Affiliate é o registro de afiliado como retornado pela API do GoAffPro.
// Os campos opcionais são ponteiros: a filtragem de registros quebrados
// acontece na agregação, não aqui.
type Affiliate struct {
	ID              *int64     `json:"id,omitempty"`
	Name            *string    `json:"name,omitempty"`
	Email           *string    `json:"email,omitempty"`
	RefCode         *string    `json:"ref_code,omitempty"`
	SubtotalRevenue FlexNumber `json:"subtotal_revenue,omitempty"`
	CreatedAt       string     `json:"created_at,omitempty"`
}
