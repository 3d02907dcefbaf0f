package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/farm"
)

// PlantRequest plants one seed
type PlantRequest struct {
	X     int    `json:"x" validate:"min=0"`
	Y     int    `json:"y" validate:"min=0"`
	Plant string `json:"plant" validate:"required,max=64,plantname"`
}

// CellRequest addresses one cell
type CellRequest struct {
	X int `json:"x" validate:"min=0"`
	Y int `json:"y" validate:"min=0"`
}

// FarmHandler serves the farm actions and views
type FarmHandler struct {
	svc farm.Service
}

// NewFarmHandler creates a handler around the farm service
func NewFarmHandler(svc farm.Service) *FarmHandler {
	return &FarmHandler{svc: svc}
}

// HandlePlant plants a seed in an empty cell
// @Summary Plant a seed
// @Description Plants one seed from the inventory in an empty cell. The plant must grow in the current season.
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Cell and plant name"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ActionResponse
// @Router /farm/plant [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, farm.ActionPlant); err != nil {
		return
	}

	res, err := h.svc.Plant(r.Context(), req.X, req.Y, req.Plant)
	if err != nil {
		respondServiceError(w, r, farm.ActionPlant, err)
		return
	}
	respondOK(w, fmt.Sprintf(MsgPlantedFmt, res.PlantName))
}

// HandleHarvest collects a ready crop
// @Summary Harvest a ready crop
// @Tags farm
// @Accept json
// @Produce json
// @Param request body CellRequest true "Cell coordinates"
// @Success 200 {object} HarvestResponse
// @Failure 400 {object} ActionResponse
// @Router /farm/harvest [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	var req CellRequest
	if err := DecodeAndValidateRequest(r, w, &req, farm.ActionHarvest); err != nil {
		return
	}

	res, err := h.svc.Harvest(r.Context(), req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, farm.ActionHarvest, err)
		return
	}
	respondJSON(w, http.StatusOK, HarvestResponse{
		ActionResponse: ActionResponse{
			OK:      true,
			Message: fmt.Sprintf(MsgHarvestedFmt, res.PlantName, res.Seeds, res.Harvested),
		},
		Result: res,
	})
}

// HandleUpgrade buys the next level of a tile
// @Summary Upgrade a tile
// @Tags farm
// @Accept json
// @Produce json
// @Param request body CellRequest true "Cell coordinates"
// @Success 200 {object} UpgradeResponse
// @Failure 400 {object} ActionResponse
// @Router /farm/upgrade [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req CellRequest
	if err := DecodeAndValidateRequest(r, w, &req, farm.ActionUpgrade); err != nil {
		return
	}

	res, err := h.svc.Upgrade(r.Context(), req.X, req.Y)
	if err != nil {
		respondServiceError(w, r, farm.ActionUpgrade, err)
		return
	}
	respondJSON(w, http.StatusOK, UpgradeResponse{
		ActionResponse: ActionResponse{OK: true, Message: fmt.Sprintf(MsgUpgradedFmt, res.Level)},
		Level:          res.Level,
		Cost:           res.Cost,
		NextCost:       res.NextCost,
	})
}

// HandleSellAll sells every harvested crop
// @Summary Sell every harvested crop
// @Tags farm
// @Produce json
// @Success 200 {object} SellResponse
// @Failure 500 {object} ActionResponse
// @Router /farm/sell [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleSellAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SellAll(r.Context())
	if err != nil {
		respondServiceError(w, r, farm.ActionSell, err)
		return
	}
	respondJSON(w, http.StatusOK, SellResponse{
		ActionResponse: ActionResponse{OK: true, Message: fmt.Sprintf(MsgSoldFmt, res.TotalCredited)},
		TotalCredited:  res.TotalCredited,
		Sold:           res.Sold,
		Gold:           res.Gold,
	})
}

// HandleGetCell returns the view of the cell at ?x=&y=
// @Summary Get one cell
// @Tags farm
// @Produce json
// @Param x query int true "Column"
// @Param y query int true "Row"
// @Success 200 {object} domain.CellView
// @Failure 400 {object} ActionResponse
// @Router /farm/cell [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleGetCell(w http.ResponseWriter, r *http.Request) {
	x, ok := GetQueryInt(r, w, QueryParamX)
	if !ok {
		return
	}
	y, ok := GetQueryInt(r, w, QueryParamY)
	if !ok {
		return
	}

	view, err := h.svc.GetCellView(r.Context(), x, y)
	if err != nil {
		respondServiceError(w, r, "cell", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleGetBoard returns the whole farm
// @Summary Get the whole board
// @Tags farm
// @Produce json
// @Success 200 {object} domain.BoardView
// @Router /farm [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.svc.GetBoard(r.Context())
	if err != nil {
		respondServiceError(w, r, "board", err)
		return
	}
	respondJSON(w, http.StatusOK, board)
}

// HandleGetInventory returns a copy of the ledger
// @Summary Get the inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.InventoryView
// @Router /inventory [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetInventory(r.Context())
	if err != nil {
		respondServiceError(w, r, "inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

// HandleListPlants lists the catalog, optionally only what grows this season
// @Summary List the plant catalog
// @Tags catalog
// @Produce json
// @Param plantable query bool false "Only plants that grow this season"
// @Success 200 {array} domain.PlantInfo
// @Failure 400 {object} ActionResponse
// @Router /plants [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleListPlants(w http.ResponseWriter, r *http.Request) {
	plantableOnly, err := strconv.ParseBool(GetOptionalQueryParam(r, QueryParamPlantable, "false"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryParamPlantable))
		return
	}

	plants, err := h.svc.ListPlants(r.Context(), plantableOnly)
	if err != nil {
		respondServiceError(w, r, "plants", err)
		return
	}
	respondJSON(w, http.StatusOK, plants)
}

// HandleGetSeason returns the current season
// @Summary Get the current season
// @Tags catalog
// @Produce json
// @Success 200 {object} SeasonResponse
// @Router /season [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SeasonResponse{Season: h.svc.Season(r.Context())})
}

// HandleGetSnapshot exports the farm in its persisted form
// @Summary Export the farm
// @Tags persistence
// @Produce json
// @Success 200 {object} domain.SaveSnapshot
// @Router /snapshot [get]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Save(r.Context()))
}

// HandlePutSnapshot replaces the farm with the posted snapshot
// @Summary Replace the farm with a snapshot
// @Description Nothing changes when the snapshot is rejected.
// @Tags persistence
// @Accept json
// @Produce json
// @Param request body domain.SaveSnapshot true "Saved farm"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ActionResponse
// @Router /snapshot [put]
// @Security ApiKeyAuth
func (h *FarmHandler) HandlePutSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap domain.SaveSnapshot
	if err := DecodeAndValidateRequest(r, w, &snap, "Snapshot"); err != nil {
		return
	}

	if err := h.svc.Load(r.Context(), snap); err != nil {
		respondServiceError(w, r, "snapshot", err)
		return
	}
	respondOK(w, MsgSnapshotApplied)
}

// HandleSave persists the farm to the configured store
// @Summary Save the farm to the store
// @Tags persistence
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 500 {object} ActionResponse
// @Router /save [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Persist(r.Context()); err != nil {
		respondServiceError(w, r, "save", err)
		return
	}
	respondOK(w, MsgFarmSaved)
}

// HandleLoad restores the farm from the configured store
// @Summary Load the farm from the store
// @Description ok and found are false when nothing has been saved yet.
// @Tags persistence
// @Produce json
// @Success 200 {object} LoadResponse
// @Failure 400 {object} ActionResponse
// @Router /load [post]
// @Security ApiKeyAuth
func (h *FarmHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.Restore(r.Context())
	if err != nil {
		respondServiceError(w, r, "load", err)
		return
	}
	msg := MsgFarmLoaded
	if !found {
		msg = ErrMsgNoSaveError
	}
	respondJSON(w, http.StatusOK, LoadResponse{
		ActionResponse: ActionResponse{OK: found, Message: msg},
		Found:          found,
	})
}
