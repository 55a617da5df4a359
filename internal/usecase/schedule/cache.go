package schedule

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Tempo de vida dos agregados de mês; qualquer mutação invalida antes disso
const monthCacheTTL = 5 * time.Minute

func NewMonthCache() *gocache.Cache {
	return gocache.New(monthCacheTTL, 10*time.Minute)
}

// chave por conta + "YYYY-MM"
func monthCacheKey(accountID, yearMonth string) string {
	return "month:" + accountID + ":" + yearMonth
}

// invalidateMonthFor derruba o agregado do mês que contém a data alterada
func invalidateMonthFor(cache *gocache.Cache, accountID, date string) {
	if cache == nil || len(date) < 7 {
		return
	}
	cache.Delete(monthCacheKey(accountID, date[:7]))
}
