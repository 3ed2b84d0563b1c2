package model

import "fmt"

// EquityReport is the response body for /analise/acao/{ticker}.
// JSON keys are the stable output contract consumed by clients; nil indicator
// fields serialize as null.
type EquityReport struct {
	Ticker         string         `json:"ticker"`
	Company        string         `json:"empresa"`
	Price          *float64       `json:"preco"`
	PriceEarnings  *float64       `json:"P/L"`
	DividendYield  *float64       `json:"Dividend Yield"`
	ROE            *float64       `json:"ROE"`
	ROIC           *float64       `json:"ROIC"`
	EVEBITDA       *float64       `json:"EV/EBITDA"`
	NetMargin      *float64       `json:"Margem Líquida"`
	DebtToEquity   *float64       `json:"Dívida/Patrimônio"`
	RevenueGrowth  *float64       `json:"Crescimento de Receita"`
	MarketCap      *float64       `json:"Valor de Mercado"`
	Score          string         `json:"Pontuacao"`
	Recommendation Recommendation `json:"Recomendacao"`
	Explanations   []string       `json:"Explicacao"`
	Profile        Profile        `json:"Perfil"`
}

// FundReport is the response body for /analise/fii/{ticker}.
type FundReport struct {
	Ticker           string         `json:"ticker"`
	Company          string         `json:"empresa"`
	Price            *float64       `json:"preco"`
	DividendYield    *float64       `json:"Dividend Yield"`
	PriceToBook      *float64       `json:"P/VP"`
	Vacancy          *float64       `json:"Vacância"`
	CapRate          *float64       `json:"Cap Rate"`
	AvgLiquidity     *float64       `json:"Liquidez Média"`
	DividendPerShare *float64       `json:"Histórico de Dividendos"`
	Score            string         `json:"Pontuacao"`
	Recommendation   Recommendation `json:"Recomendacao"`
	Explanations     []string       `json:"Explicacao"`
	Profile          Profile        `json:"Perfil"`
}

// FormatScore renders the "<total>/<max>" score string, total rounded to
// two decimals.
func FormatScore(total float64, max int) string {
	return fmt.Sprintf("%.2f/%d", total, max)
}
