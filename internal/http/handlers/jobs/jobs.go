package jobs

import "net/http"

const allowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS opens the job endpoints to any origin and answers preflight requests
// before authentication takes place.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
