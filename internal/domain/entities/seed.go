package entities

// DefaultSeed returns the document written on first start: every collection
// empty except the service catalog and the parts inventory.
func DefaultSeed() Snapshot {
	s := make(Snapshot, len(AllCollections))
	for _, name := range AllCollections {
		s[name] = []Record{}
	}
	s[CollectionServicos] = []Record{
		{FieldID: 1, FieldDescricao: "Troca de Óleo", FieldCategoria: "Manutenção", FieldValorMaoObra: 50, FieldTempoEstimado: "30 min"},
		{FieldID: 2, FieldDescricao: "Alinhamento", FieldCategoria: "Suspensão", FieldValorMaoObra: 80, FieldTempoEstimado: "1 hora"},
		{FieldID: 3, FieldDescricao: "Balanceamento", FieldCategoria: "Suspensão", FieldValorMaoObra: 60, FieldTempoEstimado: "45 min"},
		{FieldID: 4, FieldDescricao: "Troca de Pastilhas de Freio", FieldCategoria: "Freios", FieldValorMaoObra: 120, FieldTempoEstimado: "1.5 horas"},
		{FieldID: 5, FieldDescricao: "Revisão Completa", FieldCategoria: "Manutenção", FieldValorMaoObra: 200, FieldTempoEstimado: "3 horas"},
	}
	s[CollectionPecas] = []Record{
		{FieldID: 1, FieldCodigo: "P001", FieldDescricao: "Óleo 5W30", FieldFornecedor: "Petrobras", FieldCustoUnitario: 25, FieldPrecoVenda: 45, FieldQuantidadeEstoque: 50, FieldEstoqueMinimo: 10},
		{FieldID: 2, FieldCodigo: "P002", FieldDescricao: "Filtro de Óleo", FieldFornecedor: "Mann", FieldCustoUnitario: 15, FieldPrecoVenda: 30, FieldQuantidadeEstoque: 30, FieldEstoqueMinimo: 5},
		{FieldID: 3, FieldCodigo: "P003", FieldDescricao: "Pastilha de Freio", FieldFornecedor: "Bosch", FieldCustoUnitario: 80, FieldPrecoVenda: 150, FieldQuantidadeEstoque: 20, FieldEstoqueMinimo: 5},
		{FieldID: 4, FieldCodigo: "P004", FieldDescricao: "Disco de Freio", FieldFornecedor: "Bosch", FieldCustoUnitario: 120, FieldPrecoVenda: 220, FieldQuantidadeEstoque: 15, FieldEstoqueMinimo: 3},
	}
	return s
}
