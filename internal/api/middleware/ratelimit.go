package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/strikearena/SA-ReservationService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// visitor лимитер одного клиента и время последнего запроса
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter пер-IP ограничитель частоты запросов
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	logger   Logger
}

// NewRateLimiter создает ограничитель и запускает фоновую чистку
// неактивных клиентов
func NewRateLimiter(rps float64, burst int, logger Logger, stopCh <-chan struct{}) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		logger:   logger,
	}

	go rl.cleanupLoop(stopCh)

	return rl
}

// Middleware ограничивает частоту запросов по IP клиента
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !rl.limiterFor(ip).Allow() {
			rl.logger.Warn("RateLimit: too many requests from %s, path=%s", ip, r.URL.Path)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()

	return v.limiter
}

// cleanupLoop удаляет клиентов, не приходивших последние 10 минут
func (rl *RateLimiter) cleanupLoop(stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
