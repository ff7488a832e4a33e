package cart

type Item struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
