package inventory

// SuggestedOrderQty cantidad sugerida para reponer un producto hasta su stock máximo.
// Devuelve 0 si el stock actual ya alcanza el máximo.
func SuggestedOrderQty(currentStock, maxStock int) int {
	if currentStock >= maxStock {
		return 0
	}
	return maxStock - currentStock
}

// Deficit unidades por debajo del mínimo (0 si no hay déficit).
func Deficit(currentStock, minStock int) int {
	if currentStock >= minStock {
		return 0
	}
	return minStock - currentStock
}
