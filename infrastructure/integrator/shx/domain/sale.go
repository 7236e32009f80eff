package shxdomain

// OriginCompany identifica a loja emissora da nota.
type OriginCompany struct {
	Code  int    `json:"codigo"`
	Name  string `json:"nome,omitempty"`
	TaxID string `json:"cnpj,omitempty"`
}

// SaleProduct é um item da nota. Tipo pode vir vazio da integração.
type SaleProduct struct {
	Type     string  `json:"tipo,omitempty"`
	NetValue float64 `json:"valorLiquido"`
}

// SaleNote é uma nota de venda retornada pela integração SHX.
//
// RecordDate é a data de emissão da nota; SaleDate é a data efetiva da venda
// e é o campo usado para o bucketing dos relatórios. ProductsValue não
// necessariamente é igual à soma dos valorLiquido dos produtos: os relatórios
// por data usam ProductsValue e o relatório por tipo usa o valor de cada item.
type SaleNote struct {
	OriginCompany OriginCompany `json:"empresaOrigem"`
	ProductsValue float64       `json:"valorProdutos"`
	FreightValue  float64       `json:"valorFrete"`
	RecordDate    string        `json:"data,omitempty"`
	SaleDate      string        `json:"dataVenda,omitempty"`
	Products      []SaleProduct `json:"produtos,omitempty"`
}
