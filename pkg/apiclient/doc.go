// Package apiclient is a JSON HTTP client that produces classifiable
// failures and applies the resilience stack on every request: bounded retry
// with exponential backoff, optional circuit breaker protection, structured
// logging of retry and breaker events.
//
// Non-2xx responses come back as *classify.ResponseError; transport failures
// come back raw. Either way, classify.Classify at the call site yields the
// uniform taxonomy the recovery package dispatches on.
//
// # Usage
//
//	store := session.NewMemoryStore()
//
//	api, err := apiclient.New("https://api.example.com",
//	    apiclient.WithTokenProvider(apiclient.TokenProviderFunc(
//	        func(ctx context.Context) (string, error) {
//	            s, err := store.Load(ctx)
//	            if err != nil {
//	                return "", nil // unauthenticated request
//	            }
//	            return s.Token, nil
//	        })),
//	    apiclient.WithBreaker(breaker.NewBreaker(5, time.Minute)),
//	)
//
//	var conv Conversation
//	if err := api.Get(ctx, "/conversations/42", &conv); err != nil {
//	    cerr := classify.Classify(err)
//	    if !recovery.Attempt(ctx, cerr, recovery.Defaults(store, router)...) {
//	        showError(cerr.Message)
//	    }
//	}
//
// Retries are attempted only for failures classify.IsRetryable accepts, and
// never when the circuit is open: once the breaker has tripped, waiting out
// the backoff schedule would just delay the inevitable rejection.
package apiclient
