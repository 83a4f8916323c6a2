package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/api/models"
	"github.com/oracular-labs/oracular/internal/logging"
)

// HealthCheck ... Handle health check
func (oh *OracularHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, oh.service.CheckHealth())
}

// GetOwner ... Handle service owner fetch
func (oh *OracularHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := oh.service.Owner()
	if err != nil {
		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewOKResp(models.Result{"owner": owner.Hex()}))
}

// SetOwner ... Handle service ownership transfer
func (oh *OracularHandler) SetOwner(w http.ResponseWriter, r *http.Request) {
	var body *models.OwnerUpdateBody

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	if err := oh.service.SetOwner(body.Caller, body.Owner); err != nil {
		logging.WithContext(oh.ctx).
			Error("Could not transfer ownership", zap.Error(err))

		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewOKResp(models.Result{"owner": body.Owner.Hex()}))
}

// CreateFeed ... Handle price feed deployment request
func (oh *OracularHandler) CreateFeed(w http.ResponseWriter, r *http.Request) {
	var body *models.FeedRequestBody

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	txHash, err := oh.service.CreateFeed(body)
	if err != nil {
		logging.WithContext(oh.ctx).
			Error("Could not process feed creation", zap.Error(err))

		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewAcceptedResp(models.Result{"tx_hash": txHash.Hex()}))
}

// ListFeeds ... Handle feed listing request
func (oh *OracularHandler) ListFeeds(w http.ResponseWriter, r *http.Request) {
	feeds, err := oh.service.ListFeeds()
	if err != nil {
		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewOKResp(feeds))
}
