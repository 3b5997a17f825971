package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/usecases/coin"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// CoinShower looks up a single asset snapshot.
type CoinShower interface {
	Execute(ctx context.Context, input coin.ShowInput) (*entities.Coin, error)
}

// CoinLister lists every persisted snapshot.
type CoinLister interface {
	Execute(ctx context.Context) ([]*entities.Coin, error)
}

// CoinHandler handles the market snapshot endpoints.
type CoinHandler struct {
	show CoinShower
	list CoinLister
}

func NewCoinHandler(show CoinShower, list CoinLister) *CoinHandler {
	return &CoinHandler{show: show, list: list}
}

// Show handles GET /coins/{coinId}.
func (h *CoinHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	coinID := entities.CoinID(mux.Vars(r)["coinId"])
	if !coinID.Valid() {
		writeBadRequest(ctx, w, "unsupported coin")
		return
	}

	result, err := h.show.Execute(ctx, coin.ShowInput{CoinID: coinID})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// List handles GET /coins.
func (h *CoinHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	coins, err := h.list.Execute(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if coins == nil {
		coins = []*entities.Coin{}
	}

	writeJSON(ctx, w, http.StatusOK, coins)
}
