package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/api/models"
	"github.com/oracular-labs/oracular/internal/logging"
)

// renderResponse ... Writes the response envelope with its embedded status code
func renderResponse(w http.ResponseWriter, r *http.Request, resp *models.Response) {
	w.WriteHeader(resp.Code)
	render.JSON(w, r, resp)
}

// addressParam ... Parses a hex address query parameter
func addressParam(r *http.Request, key string) (common.Address, bool) {
	raw := r.URL.Query().Get(key)
	if !common.IsHexAddress(raw) {
		return common.Address{}, false
	}

	return common.HexToAddress(raw), true
}

// CreateOracle ... Handle oracle creation request
func (oh *OracularHandler) CreateOracle(w http.ResponseWriter, r *http.Request) {
	var body *models.OracleRequestBody

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logging.WithContext(oh.ctx).
			Error("Could not unmarshal oracle request", zap.Error(err))

		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	if err := oh.service.CreateOracle(body); err != nil {
		logging.WithContext(oh.ctx).
			Error("Could not process oracle creation", zap.Error(err))

		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewAcceptedResp(models.Result{
		"owner":    body.Owner.Hex(),
		"contract": body.Destination.Contract.Hex(),
	}))
}

// UpdateOracleMetadata ... Handle partial oracle metadata update request
func (oh *OracularHandler) UpdateOracleMetadata(w http.ResponseWriter, r *http.Request) {
	var body *models.OracleUpdateBody

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logging.WithContext(oh.ctx).
			Error("Could not unmarshal oracle update", zap.Error(err))

		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	if err := oh.service.UpdateOracleMetadata(body); err != nil {
		logging.WithContext(oh.ctx).
			Error("Could not process oracle update", zap.Error(err))

		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewOKResp(models.Result{
		"owner":    body.Owner.Hex(),
		"contract": body.Contract.Hex(),
	}))
}

// DeleteOracle ... Handle oracle deletion request
func (oh *OracularHandler) DeleteOracle(w http.ResponseWriter, r *http.Request) {
	owner, ok := addressParam(r, "owner")
	if !ok {
		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	contractAddr, ok := addressParam(r, "contract")
	if !ok {
		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	if err := oh.service.DeleteOracle(owner, contractAddr); err != nil {
		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewOKResp(models.Result{"deleted": contractAddr.Hex()}))
}

// GetOracleMetadata ... Handle metadata fetch for one oracle
func (oh *OracularHandler) GetOracleMetadata(w http.ResponseWriter, r *http.Request) {
	owner, ok := addressParam(r, "owner")
	if !ok {
		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	contractAddr, ok := addressParam(r, "contract")
	if !ok {
		renderResponse(w, r, models.NewUnmarshalErrResp())
		return
	}

	md, err := oh.service.GetOracleMetadata(owner, contractAddr)
	if err != nil {
		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	renderResponse(w, r, models.NewOKResp(md))
}

// GetOracles ... Handle listing; scoped to one owner when the owner
// query parameter is present, otherwise all oracles grouped by owner
func (oh *OracularHandler) GetOracles(w http.ResponseWriter, r *http.Request) {
	if owner, ok := addressParam(r, "owner"); ok {
		entries, err := oh.service.GetUserOracles(owner)
		if err != nil {
			renderResponse(w, r, models.NewErrResp(err))
			return
		}

		renderResponse(w, r, models.NewOKResp(entries))
		return
	}

	all, err := oh.service.GetAllOracles()
	if err != nil {
		renderResponse(w, r, models.NewErrResp(err))
		return
	}

	grouped := make(map[string]interface{}, len(all))
	for owner, entries := range all {
		grouped[owner.Hex()] = entries
	}

	renderResponse(w, r, models.NewOKResp(grouped))
}
