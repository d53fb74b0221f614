package middleware

import (
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "github.com/Aayush-pixel29/mgnrega-dashboard/metrics"
)

// MetricsMiddleware counts requests by route template and status code.
// The mux path template keeps label cardinality bounded even with
// arbitrary district codes in the path.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            wrw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
            next.ServeHTTP(wrw, r)

            route := r.URL.Path
            if cur := mux.CurrentRoute(r); cur != nil {
                if tmpl, err := cur.GetPathTemplate(); err == nil {
                    route = tmpl
                }
            }
            m.IncRequest(route, strconv.Itoa(wrw.status))
        })
    }
}
