package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/project/library/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGlobalOutboxHandler(t *testing.T) {
	t.Parallel()

	type received struct {
		path string
		body string
	}
	got := make(chan received, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- received{path: r.URL.Path, body: string(body)}
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	tests := []struct {
		name string
		kind repository.OutboxKind
		path string
		data string
	}{
		{name: "rental event goes to rental url",
			kind: repository.OutboxKindRental,
			path: "/rentals",
			data: `{"event":"rental.borrowed","rental_id":1}`},

		{name: "book event goes to book url",
			kind: repository.OutboxKindBook,
			path: "/books",
			data: `{"event":"book.created","book_id":1}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler, err := globalOutboxHandler(server.Client(), server.URL+"/rentals", server.URL+"/books")(test.kind)
			require.NoError(t, err)

			require.NoError(t, handler(context.Background(), []byte(test.data)))

			r := <-got
			require.Equal(t, test.path, r.path)
			require.JSONEq(t, test.data, r.body)
		})
	}

	t.Run("non 2xx is a failure", func(t *testing.T) {
		handler, err := globalOutboxHandler(server.Client(), server.URL+"/broken", server.URL+"/books")(repository.OutboxKindRental)
		require.NoError(t, err)

		err = handler(context.Background(), []byte(`{}`))
		require.ErrorIs(t, err, errFailRequest)
		<-got
	})

	t.Run("unknown kind", func(t *testing.T) {
		handler, err := globalOutboxHandler(server.Client(), "", "")(repository.OutboxKindUndefined)
		require.Error(t, err)
		require.Nil(t, handler)
	})
}

func TestLayerLogger(t *testing.T) {
	t.Parallel()

	logger := zap.NewNop()
	require.Same(t, logger, layerLogger(true, logger))
	require.Nil(t, layerLogger(false, logger))
}
