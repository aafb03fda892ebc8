package vehiclehistory

import (
	"garage/infras/otel"
	"garage/internal/domains/vehiclehistory/model"
	"garage/internal/domains/vehiclehistory/model/dto"
	"garage/internal/domains/vehiclehistory/service"
	"garage/shared/constant"
	gDto "garage/shared/dto"
	"garage/shared/validator"
	"garage/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.VehicleHistory
	otel    otel.Otel
}

func New(service service.VehicleHistory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehicle-history", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVehicleHistory)
		routerGroup.Get("/", handler.GetVehicleHistories)
		routerGroup.Get("/{id}", handler.GetVehicleHistoryByID)
		routerGroup.Patch("/{id}", handler.UpdateVehicleHistory)
		routerGroup.Delete("/{id}", handler.DeleteVehicleHistory)
	})
}

// CreateVehicleHistory records a completed service for a vehicle.
// @Summary Create a new vehicle history record
// @Description Record a completed service for a vehicle.
// @Tags VehicleHistory
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleHistoryRequest true "Create Vehicle History Request"
// @Success 201 {object} response.Message "Vehicle history created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-history [post]
// @Security BearerAuth
func (handler *Handler) CreateVehicleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicleHistory")
	defer scope.End()

	req := dto.CreateVehicleHistoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle history")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle history created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Vehicle history created successfully")
}

// GetVehicleHistories retrieves service history records based on query parameters.
// @Summary Get all vehicle history records
// @Description Retrieve service history records with optional filtering and pagination. Lookup by plate number is the common case.
// @Tags VehicleHistory
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param vehicle_number query string false "Filter by vehicle plate number (partial match)"
// @Param customer_name query string false "Filter by customer name (partial match)"
// @Param service_type query string false "Filter by service type"
// @Success 200 {object} response.Data[dto.GetVehicleHistoriesResponse] "List of vehicle history records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-history [get]
// @Security BearerAuth
func (handler *Handler) GetVehicleHistories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleHistories")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	vehicleNumber := r.URL.Query().Get(model.FieldVehicleNumber)
	customerName := r.URL.Query().Get(model.FieldCustomerName)
	serviceType := r.URL.Query().Get(model.FieldServiceType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if vehicleNumber != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVehicleNumber,
			Operator: gDto.FilterOperatorLike,
			Value:    vehicleNumber,
			Table:    model.TableName,
		})
	}

	if customerName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerName,
			Operator: gDto.FilterOperatorLike,
			Value:    customerName,
			Table:    model.TableName,
		})
	}

	if serviceType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldServiceType,
			Operator: gDto.FilterOperatorEq,
			Value:    serviceType,
			Table:    model.TableName,
		})
	}

	histories, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle histories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle histories retrieved successfully")

	response.WithJSON(w, http.StatusOK, histories)
}

// GetVehicleHistoryByID retrieves a vehicle history record by its ID.
// @Summary Get a vehicle history record by ID
// @Description Retrieve a vehicle history record by its unique identifier.
// @Tags VehicleHistory
// @Accept json
// @Produce json
// @Param id path string true "Vehicle History ID"
// @Success 200 {object} response.Data[dto.VehicleHistoryResponse] "Vehicle history details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-history/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetVehicleHistoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleHistoryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	history, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle history by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}

// UpdateVehicleHistory updates an existing vehicle history record by its ID.
// @Summary Update a vehicle history record by ID
// @Description Update the details of an existing vehicle history record.
// @Tags VehicleHistory
// @Accept json
// @Produce json
// @Param id path string true "Vehicle History ID"
// @Param request body dto.UpdateVehicleHistoryRequest true "Update Vehicle History Request"
// @Success 200 {object} response.Message "Vehicle history updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-history/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateVehicleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicleHistory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateVehicleHistoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update vehicle history")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle history updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Vehicle history updated successfully")
}

// DeleteVehicleHistory deletes a vehicle history record by its ID.
// @Summary Delete a vehicle history record by ID
// @Description Delete a vehicle history record using its unique identifier.
// @Tags VehicleHistory
// @Accept json
// @Produce json
// @Param id path string true "Vehicle History ID"
// @Success 200 {object} response.Message "Vehicle history deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-history/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteVehicleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVehicleHistory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete vehicle history")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle history deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Vehicle history deleted successfully")
}
