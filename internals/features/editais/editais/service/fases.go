package service

// Catálogo de fases do edital. A ordem abaixo é normativa (sequenciamento
// legal do processo seletivo) e NÃO pode ser reordenada nem derivada
// alfabeticamente: a avaliação técnica antecede a habilitação de propósito.
// Tanto o avanço manual quanto os jobs automáticos usam este catálogo como
// única fonte de verdade.
const (
	FaseCriacao                        = "criacao"
	FasePublicacao                     = "publicacao"
	FaseInscricao                      = "inscricao"
	FaseInscricaoEncerrada             = "inscricao_encerrada"
	FaseDivulgacaoInscritos            = "divulgacao_inscritos"
	FaseRecursoDivulgacaoInscritos     = "recurso_divulgacao_inscritos"
	FaseAvaliacaoTecnica               = "avaliacao_tecnica"
	FaseResultadoPreliminarAvaliacao   = "resultado_preliminar_avaliacao"
	FaseRecursoAvaliacao               = "recurso_avaliacao"
	FaseHabilitacao                    = "habilitacao"
	FaseResultadoPreliminarHabilitacao = "resultado_preliminar_habilitacao"
	FaseRecursoHabilitacao             = "recurso_habilitacao"
	FaseResultadoDefinitivoHabilitacao = "resultado_definitivo_habilitacao"
	FaseResultadoFinal                 = "resultado_final"
	FaseHomologacao                    = "homologacao"
	FaseArquivamento                   = "arquivamento"
)

var Fases = []string{
	FaseCriacao,
	FasePublicacao,
	FaseInscricao,
	FaseInscricaoEncerrada,
	FaseDivulgacaoInscritos,
	FaseRecursoDivulgacaoInscritos,
	FaseAvaliacaoTecnica,
	FaseResultadoPreliminarAvaliacao,
	FaseRecursoAvaliacao,
	FaseHabilitacao,
	FaseResultadoPreliminarHabilitacao,
	FaseRecursoHabilitacao,
	FaseResultadoDefinitivoHabilitacao,
	FaseResultadoFinal,
	FaseHomologacao,
	FaseArquivamento,
}

// Rótulos de exibição das fases
var FaseLabels = map[string]string{
	FaseCriacao:                        "Criação",
	FasePublicacao:                     "Publicação",
	FaseInscricao:                      "Inscrições abertas",
	FaseInscricaoEncerrada:             "Inscrições encerradas",
	FaseDivulgacaoInscritos:            "Divulgação dos inscritos",
	FaseRecursoDivulgacaoInscritos:     "Recurso da divulgação dos inscritos",
	FaseAvaliacaoTecnica:               "Avaliação técnica",
	FaseResultadoPreliminarAvaliacao:   "Resultado preliminar da avaliação",
	FaseRecursoAvaliacao:               "Recurso da avaliação",
	FaseHabilitacao:                    "Habilitação",
	FaseResultadoPreliminarHabilitacao: "Resultado preliminar da habilitação",
	FaseRecursoHabilitacao:             "Recurso da habilitação",
	FaseResultadoDefinitivoHabilitacao: "Resultado definitivo da habilitação",
	FaseResultadoFinal:                 "Resultado final",
	FaseHomologacao:                    "Homologação",
	FaseArquivamento:                   "Arquivamento",
}

// IndexOfFase devolve a posição da fase no catálogo, ou -1 se desconhecida.
func IndexOfFase(fase string) int {
	for i, f := range Fases {
		if f == fase {
			return i
		}
	}
	return -1
}

// ProximaFase devolve a fase seguinte do catálogo. ok=false quando a fase é
// desconhecida ou terminal (arquivamento).
func ProximaFase(fase string) (string, bool) {
	idx := IndexOfFase(fase)
	if idx < 0 || idx >= len(Fases)-1 {
		return "", false
	}
	return Fases[idx+1], true
}

// FaseValida responde se o valor pertence ao catálogo.
func FaseValida(fase string) bool {
	return IndexOfFase(fase) >= 0
}
