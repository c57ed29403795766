package entities

import "slices"

// Collection names as they appear in the persisted document and in the URL.
const (
	CollectionClientes             = "clientes"
	CollectionVeiculos             = "veiculos"
	CollectionServicos             = "servicos"
	CollectionPecas                = "pecas"
	CollectionFerramentas          = "ferramentas"
	CollectionAgendamentos         = "agendamentos"
	CollectionOrdens               = "ordens"
	CollectionCompras              = "compras"
	CollectionMovimentacoes        = "movimentacoes"
	CollectionDespesasGerais       = "despesasGerais"
	CollectionOrcamentos           = "orcamentos"
	CollectionContasAReceber       = "contas_a_receber"
	CollectionMovimentacoesEstoque = "movimentacoes_estoque"
	CollectionLogs                 = "logs"
)

// BaseCollections must be present in a backup for it to be restorable.
var BaseCollections = []string{
	CollectionClientes,
	CollectionVeiculos,
	CollectionServicos,
	CollectionPecas,
	CollectionFerramentas,
	CollectionAgendamentos,
	CollectionOrdens,
	CollectionCompras,
	CollectionMovimentacoes,
	CollectionDespesasGerais,
}

// AllCollections is the store registry. Order is the order used when
// iterating (routes, snapshots).
var AllCollections = append(slices.Clone(BaseCollections),
	CollectionOrcamentos,
	CollectionContasAReceber,
	CollectionMovimentacoesEstoque,
	CollectionLogs,
)

func IsKnownCollection(name string) bool {
	return slices.Contains(AllCollections, name)
}

// Snapshot is the whole store: collection name to its ordered records.
type Snapshot map[string][]Record

// MissingCollections lists the names in required that s does not carry.
func (s Snapshot) MissingCollections(required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := s[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
