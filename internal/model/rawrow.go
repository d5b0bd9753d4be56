package model

// RawRow is one row of a spreadsheet export, keyed by the exact header
// string (case- and accent-sensitive). Values are whatever the export
// produced: strings, numbers, or spreadsheet date serials.
type RawRow map[string]any

// Column headers of the workshop's spreadsheet export. Spelling, including
// diacritics and abbreviations, must match the export exactly.
const (
	ColNumeroOrdem     = "NOrdem_OSv"
	ColStatus          = "Status_OSv"
	ColDataOrdem       = "Data_OSv"
	ColDataFechamento  = "DataFecha_Osv"
	ColDefeito         = "ObsCorpo_OSv"
	ColDefeitoAlt      = "Obs_Osv"
	ColDefeitoAlt2     = "Descricao_TSr"
	ColMecanico        = "RazaoSocial_Cli"
	ColClienteNome     = "Nome_Cli"
	ColModeloMotor     = "Descricao_Mot"
	ColFabricanteMotor = "Fabricante_Mot"
	ColDia             = "DIA"
	ColMes             = "MÊS"
	ColAno             = "ANO"
	ColTotalPecas      = "TOT. PÇ"
	ColTotalServico    = "TOT. SERV."
	ColTotalGeral      = "TOT"
)
