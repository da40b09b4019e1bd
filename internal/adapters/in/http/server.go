package http

import (
	"errors"
	"net/http"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/generated/servers"
	"tailoring/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	rejectOrderHandler    commands.RejectOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	confirmDepositHandler commands.ConfirmDepositCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler
	registerTailorHandler commands.RegisterTailorCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderQueryHandler
	getRequesterOrdersHandler queries.GetRequesterOrdersQueryHandler
	getTailorOrdersHandler    queries.GetTailorOrdersQueryHandler
	findNearbyTailorsHandler  queries.FindNearbyTailorsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	confirmDepositHandler commands.ConfirmDepositCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	registerTailorHandler commands.RegisterTailorCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRequesterOrdersHandler queries.GetRequesterOrdersQueryHandler,
	getTailorOrdersHandler queries.GetTailorOrdersQueryHandler,
	findNearbyTailorsHandler queries.FindNearbyTailorsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		acceptOrderHandler:        acceptOrderHandler,
		rejectOrderHandler:        rejectOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		confirmDepositHandler:     confirmDepositHandler,
		advanceOrderHandler:       advanceOrderHandler,
		registerTailorHandler:     registerTailorHandler,
		getOrderHandler:           getOrderHandler,
		getRequesterOrdersHandler: getRequesterOrdersHandler,
		getTailorOrdersHandler:    getTailorOrdersHandler,
		findNearbyTailorsHandler:  findNearbyTailorsHandler,
	}
}

// CreateOrder handles POST /orders - places a new tailoring order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requesterID, err := kernel.UUIDFromBytes(newOrder.RequesterId[:])
	if err != nil {
		return badRequest(ctx, "Invalid requester id: "+err.Error())
	}
	tailorID, err := kernel.UUIDFromBytes(newOrder.TailorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid tailor id: "+err.Error())
	}
	depositMode, err := order.DepositModeFromString(newOrder.DepositMode)
	if err != nil {
		return badRequest(ctx, "Invalid deposit mode: "+err.Error())
	}

	var measurements map[string]float64
	if newOrder.Measurements != nil {
		measurements = *newOrder.Measurements
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		requesterID,
		tailorID,
		newOrder.GarmentType,
		measurements,
		newOrder.TotalAmount,
		newOrder.DepositAmount,
		depositMode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetOrder handles GET /orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	return s.respondWithOrder(ctx, orderID)
}

// AcceptOrder handles POST /orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID)
}

// RejectOrder handles POST /orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID)
}

// CancelOrder handles POST /orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID)
}

// ConfirmDeposit handles POST /orders/{orderId}/deposit.
func (s *Server) ConfirmDeposit(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmDepositCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.confirmDepositHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID)
}

// AdvanceOrder handles POST /orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return orderError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetRequesterOrders handles GET /requesters/{requesterId}/orders.
func (s *Server) GetRequesterOrders(ctx echo.Context, requesterId openapi_types.UUID) error {
	requesterID, err := kernel.UUIDFromBytes(requesterId[:])
	if err != nil {
		return badRequest(ctx, "Invalid requester id: "+err.Error())
	}

	query, err := queries.NewGetRequesterOrdersQuery(requesterID)
	if err != nil {
		return badRequest(ctx, "Invalid requester id: "+err.Error())
	}

	orders, err := s.getRequesterOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// CreateTailor handles POST /tailors - registers a new tailor.
func (s *Server) CreateTailor(ctx echo.Context) error {
	var newTailor servers.NewTailor
	if err := ctx.Bind(&newTailor); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var location *kernel.GeoPoint
	switch {
	case newTailor.Latitude != nil && newTailor.Longitude != nil:
		point, err := kernel.NewGeoPoint(*newTailor.Latitude, *newTailor.Longitude)
		if err != nil {
			return badRequest(ctx, "Invalid location: "+err.Error())
		}
		location = &point
	case newTailor.Latitude != nil || newTailor.Longitude != nil:
		return badRequest(ctx, "Latitude and longitude must be provided together")
	}

	var specializations []string
	if newTailor.Specializations != nil {
		specializations = *newTailor.Specializations
	}
	providesFabric := newTailor.ProvidesFabric != nil && *newTailor.ProvidesFabric

	cmd, err := commands.NewRegisterTailorCommand(
		kernel.NewUUID(),
		newTailor.Name,
		location,
		specializations,
		providesFabric,
	)
	if err != nil {
		return badRequest(ctx, "Invalid tailor data: "+err.Error())
	}

	if handleErr := s.registerTailorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to register tailor")
	}

	return ctx.NoContent(http.StatusCreated)
}

// FindNearbyTailors handles GET /tailors/nearby - radius-escalating discovery.
func (s *Server) FindNearbyTailors(ctx echo.Context, params servers.FindNearbyTailorsParams) error {
	origin, err := kernel.NewGeoPoint(params.Lat, params.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid search origin: "+err.Error())
	}

	garmentType := ""
	if params.GarmentType != nil {
		garmentType = *params.GarmentType
	}
	requiresFabric := params.RequiresFabric != nil && *params.RequiresFabric

	query, err := queries.NewFindNearbyTailorsQuery(origin, garmentType, requiresFabric)
	if err != nil {
		return badRequest(ctx, "Invalid search parameters: "+err.Error())
	}

	result, err := s.findNearbyTailorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to search for tailors")
	}

	response := servers.NearbyTailors{
		RadiusUsedKm: result.RadiusUsedKm,
		Tailors:      make([]servers.TailorMatch, len(result.Tailors)),
	}
	for i, match := range result.Tailors {
		response.Tailors[i] = servers.TailorMatch{
			Id:             match.ID.Bytes(),
			Name:           match.Name,
			DistanceKm:     match.DistanceKm,
			Rating:         match.Rating,
			ProvidesFabric: match.ProvidesFabric,
		}
		if len(match.Specializations) > 0 {
			specializations := match.Specializations
			response.Tailors[i].Specializations = &specializations
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTailorOrders handles GET /tailors/{tailorId}/orders. The optional status
// parameter accepts a status name or "ongoing" for unfinished work.
func (s *Server) GetTailorOrders(ctx echo.Context, tailorId openapi_types.UUID, params servers.GetTailorOrdersParams) error {
	tailorID, err := kernel.UUIDFromBytes(tailorId[:])
	if err != nil {
		return badRequest(ctx, "Invalid tailor id: "+err.Error())
	}

	filter := order.FilterAllOrders()
	if params.Status != nil {
		switch *params.Status {
		case "ongoing":
			filter = order.FilterOngoingOrders()
		default:
			status, parseErr := order.StatusFromString(*params.Status)
			if parseErr != nil {
				return badRequest(ctx, "Invalid status filter: "+parseErr.Error())
			}
			if filter, err = order.FilterByStatus(status); err != nil {
				return badRequest(ctx, "Invalid status filter: "+err.Error())
			}
		}
	}

	query, err := queries.NewGetTailorOrdersQuery(tailorID, filter)
	if err != nil {
		return badRequest(ctx, "Invalid tailor id: "+err.Error())
	}

	orders, err := s.getTailorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// respondWithOrder returns the current read-model state of one order.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(resp))
}

// orderError maps command handler failures onto HTTP statuses. Missing orders
// are 404, transition and concurrency failures are 409, the rest is 500.
func orderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNoFurtherTransition),
		errors.Is(err, errs.ErrVersionConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrStorage):
		// Driver details stay out of the response body.
		return internalError(ctx, "Order store unavailable")
	default:
		return internalError(ctx, "Failed to process order")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func toOrder(resp queries.OrderResponse) servers.Order {
	result := servers.Order{
		Id:              resp.ID.Bytes(),
		RequesterId:     resp.RequesterID.Bytes(),
		TailorId:        resp.TailorID.Bytes(),
		GarmentType:     resp.GarmentType,
		Status:          resp.Status,
		TotalAmount:     resp.TotalAmount,
		DepositAmount:   resp.DepositAmount,
		RemainingAmount: resp.RemainingAmount,
		DepositMode:     resp.DepositMode,
		DepositStatus:   resp.DepositStatus,
		PaymentStatus:   resp.PaymentStatus,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
	if resp.VerificationCode != "" {
		code := resp.VerificationCode
		result.VerificationCode = &code
	}
	return result
}

func toOrderList(orders []queries.OrderResponse) []servers.Order {
	result := make([]servers.Order, len(orders))
	for i, resp := range orders {
		result[i] = toOrder(resp)
	}
	return result
}
