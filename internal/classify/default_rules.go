package classify

// DefaultRules returns the workshop's defect classification rule set.
// Group, subgroup, and subsubgroup order is load-bearing: the classifier
// stops at the first match, and this ordering encodes which group wins when
// a description mentions several symptoms.
func DefaultRules() *RuleTree {
	return NewRuleTree([]Group{
		{
			Name:     "Vazamentos",
			Keywords: []string{"vazamento", "vazando", "vaza", "passagem", "passou", "passa", "pingando", "escorrendo", "molhado", "gota", "gotas", "esguichando"},
			Subgroups: []Subgroup{
				{
					Name:     "Vazamento de Fluido",
					Keywords: []string{"oleo", "óleo", "agua", "água", "combustivel", "combustível", "diesel", "compressao", "compressão", "liquido", "fluido", "ar", "aditivo", "refrigerante"},
					Subsubgroups: []Subsubgroup{
						{Name: "Óleo", Keywords: []string{"oleo", "óleo", "lubrificante", "motor", "carter", "retentor", "junta", "selo", "respiro", "tampa de valvula", "tampa de válvulas", "bujão"}},
						{Name: "Água", Keywords: []string{"agua", "água", "radiador", "arrefecimento", "mangueira", "bomba d agua", "bomba de água", "selo mecanico", "selo mecânico", "reservatorio", "reservatório", "vaso de expansão"}},
						{Name: "Combustível", Keywords: []string{"combustivel", "combustível", "diesel", "gasolina", "bico", "bomba injetora", "linha de combustivel", "tanque"}},
						{Name: "Compressão", Keywords: []string{"compressao", "compressão", "ar", "valvula", "válvula", "anel", "aneis", "pistao", "pistão", "junta de cabeçote", "cilindro"}},
					},
				},
			},
		},
		{
			Name:     "Problemas de Funcionamento/Desempenho",
			Keywords: []string{"aqueceu", "aquecendo", "superaquecimento", "esquentou", "perdeu", "perda", "potencia", "potência", "força", "forca", "falha", "travado", "disparou", "consumo", "fraco", "sem força", "nao liga", "não liga", "engasgando", "morrendo", "corte", "cortando", "oscilando", "irregular", "lento", "pesado", "nao desenvolve", "não desenvolve", "nao pega", "não pega", "dificuldade ligar", "nao da partida", "falhando", "rateando", "aceleracao", "aceleração", "lenta", "alta", "baixa"},
			Subgroups: []Subgroup{
				{
					Name:     "Superaquecimento",
					Keywords: []string{"aqueceu", "aquecendo", "superaquecimento", "esquentou", "temperatura", "fervendo", "super aqueceu", "superaquecendo"},
					// "Geral" leaves go last so specific symptoms win.
					Subsubgroups: []Subsubgroup{
						{Name: "Com Perda de Água", Keywords: []string{"agua", "água", "radiador", "vazamento agua", "vazamento água", "fervendo agua"}},
						{Name: "Com Travamento", Keywords: []string{"travado", "travou", "fundiu", "motor travado", "agarrou"}},
						{Name: "Geral", Keywords: []string{"aqueceu", "aquecendo", "esquentou", "temperatura"}},
					},
				},
				{
					Name:     "Perda de Potência/Falha",
					Keywords: []string{"perdeu", "perda", "potencia", "potência", "força", "forca", "falha", "falhava", "fraco", "sem força", "nao desenvolve", "não desenvolve", "engasgando", "morrendo", "corte", "cortando", "falhando", "rateando", "oscilando", "irregular", "lento", "pesado"},
					Subsubgroups: []Subsubgroup{
						{Name: "Com Fumaça", Keywords: []string{"fumaca", "fumaça", "sopra", "soprando", "fumando"}},
						{Name: "Dificuldade de Partida", Keywords: []string{"nao pega", "não pega", "partida", "dar partida", "dificuldade ligar", "nao da partida", "nao liga", "não liga"}},
						{Name: "Geral", Keywords: []string{"perdeu", "perda", "potencia", "potência", "falha", "falhava", "fraco", "sem força"}},
					},
				},
				{
					Name:     "Alto Consumo",
					Keywords: []string{"consumo", "consumindo", "gastando", "gasta", "alto consumo"},
					Subsubgroups: []Subsubgroup{
						{Name: "Consumo de Óleo", Keywords: []string{"oleo", "óleo", "consumo oleo", "baixando oleo"}},
						{Name: "Consumo de Combustível", Keywords: []string{"combustivel", "combustível", "diesel", "gasolina", "consumo combustivel", "gastando muito"}},
					},
				},
			},
		},
		{
			Name:     "Ruídos e Vibrações",
			Keywords: []string{"ruido", "ruído", "barulho", "batendo", "vibracao", "vibração", "grilando", "estalando", "chiado", "rangido", "assobio", "zumbido", "clique", "estalido"},
			Subgroups: []Subgroup{
				{
					Name:     "Ruído Interno",
					Keywords: []string{"ruido", "ruído", "barulho", "batendo", "grilando", "estalando", "interno", "dentro do motor"},
					Subsubgroups: []Subsubgroup{
						{Name: "Mancal", Keywords: []string{"mancal", "casquilho", "rodou casquilho", "bronzina", "mancal batendo"}},
						{Name: "Biela", Keywords: []string{"biela", "parafuso de biela", "pino de biela", "biela batendo"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "saia do pistao", "pistao batendo"}},
						{Name: "Válvula", Keywords: []string{"valvula", "válvula", "tucho", "balancim", "valvula batendo"}},
						{Name: "Virabrequim", Keywords: []string{"virabrequim", "eixo", "virabrequim batendo"}},
					},
				},
				{
					Name:     "Ruído Externo",
					Keywords: []string{"chiado", "rangido", "correia", "alternador", "bomba hidraulica", "externo", "fora do motor", "assobio", "zumbido"},
					Subsubgroups: []Subsubgroup{
						{Name: "Correia", Keywords: []string{"correia", "esticador", "chiado correia"}},
						{Name: "Alternador", Keywords: []string{"alternador", "barulho alternador"}},
						{Name: "Bomba Hidráulica", Keywords: []string{"bomba hidraulica", "direcao hidraulica", "barulho bomba hidraulica"}},
					},
				},
			},
		},
		{
			Name:     "Quebra/Dano Estrutural",
			Keywords: []string{"quebrou", "quebrada", "quebrado", "trincou", "trinca", "rachado", "danificado", "estourou", "fratura", "partiu", "empenou", "deformou", "rompeu", "desgastado", "riscado", "arranhado", "ovalizado", "fissura", "fissurado"},
			Subgroups: []Subgroup{
				{
					Name:     "Quebra/Fratura",
					Keywords: []string{"quebrou", "quebrada", "quebrado", "trincou", "trinca", "estourou", "partiu", "fratura", "rompeu", "rachou"},
					Subsubgroups: []Subsubgroup{
						{Name: "Virabrequim", Keywords: []string{"virabrequim", "eixo", "quebrou vira", "partiu vira"}},
						{Name: "Biela", Keywords: []string{"biela", "quebrou biela", "partiu biela"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "quebrou pistao", "partiu pistao"}},
						{Name: "Comando", Keywords: []string{"comando", "quebrou comando", "partiu comando"}},
						{Name: "Válvula", Keywords: []string{"valvula", "válvula", "quebrou valvula", "partiu valvula"}},
						{Name: "Bloco", Keywords: []string{"bloco", "trincou bloco", "rachou bloco", "quebrou bloco"}},
						{Name: "Cabeçote", Keywords: []string{"cabecote", "cabeçote", "trincou cabecote", "rachou cabecote", "quebrou cabecote"}},
						{Name: "Camisa", Keywords: []string{"camisa", "quebrou camisa", "camisa trincada"}},
						{Name: "Junta", Keywords: []string{"junta", "quebrou junta", "junta queimada", "estourou junta"}},
					},
				},
				{
					Name:     "Dano por Empenamento/Deformação",
					Keywords: []string{"empenou", "deformou", "torto", "curvo", "ovalizado"},
					Subsubgroups: []Subsubgroup{
						{Name: "Cabeçote", Keywords: []string{"cabecote", "cabeçote", "empenou cabecote", "cabeçote empenado"}},
						{Name: "Virabrequim", Keywords: []string{"virabrequim", "eixo", "empenou vira", "virabrequim empenado"}},
						{Name: "Biela", Keywords: []string{"biela", "empenou biela", "biela empenada"}},
					},
				},
			},
		},
		{
			Name:     "Problemas de Combustão/Exaustão",
			Keywords: []string{"fumaca", "fumaça", "sopra", "soprando", "respiro", "suspiro", "escapamento", "carbonizacao", "carbonização", "carbonizado", "carbono", "exaustor", "entupido", "obstruido", "obstruído"},
			Subgroups: []Subgroup{
				{
					Name:     "Fumaça Excessiva",
					Keywords: []string{"fumaca", "fumaça", "sopra", "soprando", "fumando"},
					Subsubgroups: []Subsubgroup{
						{Name: "No Respiro", Keywords: []string{"respiro", "suspiro", "fumaça respiro", "soprando respiro"}},
						{Name: "No Escapamento", Keywords: []string{"escapamento", "fumaça escapamento", "soprando escapamento"}},
						{Name: "Azul", Keywords: []string{"azul", "oleo", "óleo", "fumaça azul"}},
						{Name: "Branca", Keywords: []string{"branca", "agua", "água", "fumaça branca"}},
						{Name: "Preta", Keywords: []string{"preta", "combustivel", "combustível", "fumaça preta"}},
					},
				},
				{
					Name:     "Carbonização",
					Keywords: []string{"carbonizacao", "carbonização", "carbonizado", "carbono"},
					Subsubgroups: []Subsubgroup{
						{Name: "Válvulas", Keywords: []string{"valvula", "válvula", "carbonizacao valvula"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "carbonizacao pistao"}},
					},
				},
				{
					Name:     "Obstrução/Entupimento",
					Keywords: []string{"entupido", "obstruido", "obstruído", "carbonizado", "sujo"},
					Subsubgroups: []Subsubgroup{
						{Name: "Exaustor", Keywords: []string{"exaustor", "exaustor entupido"}},
						{Name: "Filtro", Keywords: []string{"filtro", "filtro entupido", "filtro sujo"}},
					},
				},
			},
		},
		{
			Name:     "Desgaste e Folga",
			Keywords: []string{"desgaste", "desgastou", "gastou", "folga", "folgas", "ovalizado", "riscado", "arranhado", "gripado", "apertado", "preso", "emperrado"},
			Subgroups: []Subgroup{
				{
					Name:     "Desgaste de Componentes",
					Keywords: []string{"desgaste", "desgastou", "gastou", "ovalizado", "riscado", "arranhado", "gripado"},
					Subsubgroups: []Subsubgroup{
						{Name: "Mancais", Keywords: []string{"mancal", "mancais", "casquilho", "desgaste mancal", "bronzina"}},
						{Name: "Camisas", Keywords: []string{"camisa", "camisas", "desgaste camisa", "camisa riscada", "camisa ovalizada"}},
						{Name: "Anéis de Pistão", Keywords: []string{"anel", "aneis", "anéis", "desgaste anel", "anel gasto"}},
						{Name: "Válvulas", Keywords: []string{"valvula", "válvula", "valvulas", "válvulas", "desgaste valvula", "valvula gasta"}},
						{Name: "Virabrequim", Keywords: []string{"virabrequim", "eixo", "desgaste virabrequim", "virabrequim riscado"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "desgaste pistao", "pistao gasto"}},
					},
				},
				{
					Name:     "Folga Excessiva",
					Keywords: []string{"folga", "folgas", "folga excessiva", "folgado"},
					Subsubgroups: []Subsubgroup{
						{Name: "Mancais", Keywords: []string{"mancal", "mancais", "folga mancal"}},
						{Name: "Biela", Keywords: []string{"biela", "folga biela"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "folga pistao"}},
						{Name: "Virabrequim", Keywords: []string{"virabrequim", "eixo", "folga virabrequim"}},
						{Name: "Polia", Keywords: []string{"polia", "folga polia"}},
					},
				},
				{
					Name:     "Componente Preso/Apertado",
					Keywords: []string{"preso", "apertado", "emperrado", "travado", "prendendo"},
					Subsubgroups: []Subsubgroup{
						{Name: "Eixo", Keywords: []string{"eixo", "eixo preso", "eixo travado", "prendendo eixo"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "pistao preso"}},
					},
				},
			},
		},
		{
			Name:     "Problemas de Lubrificação",
			Keywords: []string{"pressao", "pressão", "oleo", "óleo", "baixa pressao", "baixa pressão", "sem pressao", "sem pressão", "bomba de oleo", "bomba de óleo", "filtro de oleo", "filtro de óleo", "nivel de oleo", "nível de óleo", "falta de oleo", "falta de óleo"},
			Subgroups: []Subgroup{
				{
					Name:     "Baixa Pressão de Óleo",
					Keywords: []string{"baixa pressao", "baixa pressão", "pressao baixa", "pressão baixa", "sem pressao", "sem pressão", "luz de oleo acesa", "luz de óleo acesa"},
					Subsubgroups: []Subsubgroup{
						{Name: "Bomba de óleo com defeito", Keywords: []string{"bomba", "bomba de oleo", "bomba de óleo", "bomba oleo", "bomba de oleo com defeito"}},
						{Name: "Filtro de óleo obstruído", Keywords: []string{"filtro", "filtro de oleo", "filtro de óleo", "filtro sujo", "filtro obstruido"}},
						{Name: "Sensor de pressão com defeito", Keywords: []string{"sensor", "interruptor", "cebolinha", "sensor oleo", "sensor de pressão"}},
						{Name: "Falta de Óleo", Keywords: []string{"falta de oleo", "falta de óleo", "nivel baixo", "nível baixo"}},
						{Name: "Geral", Keywords: []string{"lubrificacao", "lubrificação", "problema oleo", "problema de lubrificacao"}},
					},
				},
			},
		},
		{
			Name:     "Erros de Montagem/Instalação",
			Keywords: []string{"montagem", "instalacao", "instalação", "erro", "errado", "incorreto", "danificado na montagem", "matou", "mal montado", "mal instalado", "trocado", "desalinhado", "apertado demais", "frouxo", "incompativel", "incompatível", "mal encaixado", "mal ajustado"},
			Subgroups: []Subgroup{
				{
					Name:     "Componente Incompatível/Errado",
					Keywords: []string{"errado", "incorreto", "incompativel", "incompatível", "peca errada", "peça errada", "componente errado", "trocado"},
					Subsubgroups: []Subsubgroup{
						{Name: "Filtro", Keywords: []string{"filtro", "filtro errado"}},
						{Name: "Pistão", Keywords: []string{"pistao", "pistão", "pistao errado"}},
						{Name: "Geral", Keywords: []string{"peca", "peça", "componente", "incompativel", "item errado"}},
					},
				},
				{
					Name:     "Montagem Incorreta",
					Keywords: []string{"montagem", "instalacao", "instalação", "danificado na montagem", "matou", "mal montado", "mal instalado", "apertado demais", "frouxo", "desalinhado", "mal encaixado", "mal ajustado", "junta torta"},
					Subsubgroups: []Subsubgroup{
						{Name: "Junta", Keywords: []string{"junta", "junta mal montada", "junta torta"}},
						{Name: "Cabeçote", Keywords: []string{"cabecote", "cabeçote", "cabeçote mal montado"}},
						{Name: "Geral", Keywords: []string{"montagem", "instalacao", "instalação", "mal montado", "mal instalado"}},
					},
				},
				{
					Name:     "Erro de Análise/Diagnóstico",
					Keywords: []string{"erro de analise", "erro de análise", "diagnostico errado", "diagnóstico errado", "avaliação precipitada"},
					Subsubgroups: []Subsubgroup{
						{Name: "Geral", Keywords: []string{"erro", "analise", "análise", "diagnostico", "diagnóstico"}},
					},
				},
			},
		},
		{
			Name:     "Outros",
			Keywords: []string{"geral", "diversos", "outros", "varios", "vários", "nao especificado", "não especificado", "revisao", "revisão", "manutencao", "manutenção", "eletrico", "elétrico", "hidraulico", "hidráulico", "compressor", "freio", "direcao", "direção", "suspensao", "suspensão", "pneu", "pneus", "roda", "rodas", "chassi", "carroceria", "acessorios", "acessórios", "limpeza", "ajuste", "regulagem", "alinhamento", "balanceamento", "teste", "testes", "orcamento", "orçamento", "servico", "serviço", "patio", "pátio", "cortesia", "defeito", "problema"},
			Subgroups: []Subgroup{
				{Name: "Manutenção Geral", Keywords: []string{"manutencao", "manutenção", "revisao", "revisão", "preventiva", "ajuste", "regulagem", "alinhamento", "balanceamento", "limpeza"}},
				{Name: "Problema Elétrico", Keywords: []string{"eletrico", "elétrico", "fio", "sensor", "modulo", "módulo", "bateria", "alternador", "motor de partida", "chicote"}},
				{Name: "Problema Hidráulico", Keywords: []string{"hidraulico", "hidráulico", "bomba", "cilindro", "mangueira", "direcao hidraulica", "freio hidraulico"}},
				{Name: "Problemas de Componentes Externos", Keywords: []string{"compressor", "freio", "direcao", "direção", "suspensao", "suspensão", "pneu", "pneus", "roda", "rodas", "chassi", "carroceria", "acessorios", "acessórios"}},
				{Name: "Serviços Administrativos/Não Defeito", Keywords: []string{"orcamento", "orçamento", "servico", "serviço", "patio", "pátio", "cortesia", "teste", "testes", "cotacao", "cotação", "exclusiva", "documentacao", "documentação", "referencia", "referência"}},
				{Name: "Defeito Genérico", Keywords: []string{"defeito", "problema", "nao funciona", "não funciona", "parou de funcionar", "que nao procede", "deu problema"}},
			},
		},
	})
}
