package api

import (
	"context"
	"net/http"
	"time"

	go_storefront "github.com/PayRam/go-storefront"
	"github.com/PayRam/go-storefront/request"
	"github.com/PayRam/go-storefront/response"
	"github.com/PayRam/go-storefront/service"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

type StoreRouter struct {
	store *go_storefront.StorefrontService
	log   zerolog.Logger
}

func NewStoreRouter(store *go_storefront.StorefrontService, log zerolog.Logger) *StoreRouter {
	return &StoreRouter{
		store: store,
		log:   log,
	}
}

func (sr *StoreRouter) SetupRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(sr.logRequests)
	r.Use(sr.recoverPanics)

	// mux skips r.Use middleware for unmatched requests.
	r.NotFoundHandler = sr.logRequests(sr.recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sr.respondWithJSON(w, http.StatusNotFound, response.Error(string(service.KindNotFound), "no route for "+req.URL.Path))
	})))
	r.MethodNotAllowedHandler = sr.logRequests(sr.recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sr.respondWithJSON(w, http.StatusMethodNotAllowed, response.Error(string(service.KindValidation), req.Method+" is not allowed on "+req.URL.Path))
	})))

	r.HandleFunc("/healthz", sr.handleHealth).Methods(http.MethodGet)

	branches := sr.store.Branches
	r.HandleFunc("/select_branch", listHandler(sr, branches.ListBranches)).Methods(http.MethodGet)
	r.HandleFunc("/select_branch/{id}", getHandler(sr, branches.GetBranch)).Methods(http.MethodGet)
	r.HandleFunc("/insert_branch", createHandler(sr, branches.CreateBranch)).Methods(http.MethodPost)
	r.HandleFunc("/update_branch", updateHandler(sr, "br_seq", branches.UpdateBranch)).Methods(http.MethodPost)
	r.HandleFunc("/delete_branch/{id}", deleteHandler(sr, branches.DeleteBranch)).Methods(http.MethodDelete)

	customers := sr.store.Customers
	r.HandleFunc("/select_customers", listHandler(sr, customers.ListCustomers)).Methods(http.MethodGet)
	r.HandleFunc("/select_customer/{id}", getHandler(sr, customers.GetCustomer)).Methods(http.MethodGet)
	r.HandleFunc("/insert_customer", createHandler(sr, customers.CreateCustomer)).Methods(http.MethodPost)
	r.HandleFunc("/update_customer", updateHandler(sr, "id", customers.UpdateCustomer)).Methods(http.MethodPost)
	r.HandleFunc("/delete_customer/{id}", deleteHandler(sr, customers.DeleteCustomer)).Methods(http.MethodDelete)
	r.HandleFunc("/view_customer_image/{id}", imageHandler(sr, customers.GetCustomerImage)).Methods(http.MethodGet)
	r.HandleFunc("/update_customer_image", updateImageHandler(sr, "id", customers.UpdateCustomerImage)).Methods(http.MethodPost)

	products := sr.store.Products
	r.HandleFunc("/select_products", listHandler(sr, products.ListProducts)).Methods(http.MethodGet)
	r.HandleFunc("/select_search", sr.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/select_product/{id}", getHandler(sr, products.GetProduct)).Methods(http.MethodGet)
	r.HandleFunc("/insert_product", createHandler(sr, products.CreateProduct)).Methods(http.MethodPost)
	r.HandleFunc("/update_product", updateHandler(sr, "p_seq", products.UpdateProduct)).Methods(http.MethodPost)
	r.HandleFunc("/delete_product/{id}", deleteHandler(sr, products.DeleteProduct)).Methods(http.MethodDelete)

	productBases := sr.store.ProductBases
	r.HandleFunc("/select_productbase", listHandler(sr, productBases.ListProductBases)).Methods(http.MethodGet)
	r.HandleFunc("/select_productbase/{id}", getHandler(sr, productBases.GetProductBase)).Methods(http.MethodGet)
	r.HandleFunc("/insert_productbase", createHandler(sr, productBases.CreateProductBase)).Methods(http.MethodPost)
	r.HandleFunc("/update_productbase", updateHandler(sr, "id", productBases.UpdateProductBase)).Methods(http.MethodPost)
	r.HandleFunc("/delete_productbase/{id}", deleteHandler(sr, productBases.DeleteProductBase)).Methods(http.MethodDelete)

	purchaseItems := sr.store.PurchaseItems
	r.HandleFunc("/select_purchaseitems", listHandler(sr, purchaseItems.ListPurchaseItems)).Methods(http.MethodGet)
	r.HandleFunc("/select_purchaseitem/{id}", getHandler(sr, purchaseItems.GetPurchaseItem)).Methods(http.MethodGet)
	r.HandleFunc("/insert_purchaseitem", createHandler(sr, purchaseItems.CreatePurchaseItem)).Methods(http.MethodPost)
	r.HandleFunc("/update_purchaseitem", updateHandler(sr, "b_seq", purchaseItems.UpdatePurchaseItem)).Methods(http.MethodPost)
	r.HandleFunc("/delete_purchaseitem/{id}", deleteHandler(sr, purchaseItems.DeletePurchaseItem)).Methods(http.MethodDelete)

	loginHistory := sr.store.LoginHistory
	r.HandleFunc("/select_login_histories", listHandler(sr, loginHistory.ListLoginHistory)).Methods(http.MethodGet)
	r.HandleFunc("/select_login_history/{id}", getHandler(sr, loginHistory.GetLoginHistory)).Methods(http.MethodGet)
	r.HandleFunc("/insert_login_history", createHandler(sr, loginHistory.CreateLoginHistory)).Methods(http.MethodPost)
	r.HandleFunc("/update_login_history", updateHandler(sr, "id", loginHistory.UpdateLoginHistory)).Methods(http.MethodPost)
	r.HandleFunc("/delete_login_history/{id}", deleteHandler(sr, loginHistory.DeleteLoginHistory)).Methods(http.MethodDelete)

	refunds := sr.store.Refunds
	r.HandleFunc("/select_refunds", listHandler(sr, refunds.ListRefunds)).Methods(http.MethodGet)
	r.HandleFunc("/select_refund/{id}", getHandler(sr, refunds.GetRefund)).Methods(http.MethodGet)
	r.HandleFunc("/insert_refund", createHandler(sr, refunds.CreateRefund)).Methods(http.MethodPost)
	r.HandleFunc("/update_refund", updateHandler(sr, "ref_seq", refunds.UpdateRefund)).Methods(http.MethodPost)
	r.HandleFunc("/delete_refund/{id}", deleteHandler(sr, refunds.DeleteRefund)).Methods(http.MethodDelete)

	staff := sr.store.Staff
	r.HandleFunc("/select_staffs", listHandler(sr, staff.ListStaff)).Methods(http.MethodGet)
	r.HandleFunc("/select_staff/{id}", getHandler(sr, staff.GetStaff)).Methods(http.MethodGet)
	r.HandleFunc("/insert_staff", createHandler(sr, staff.CreateStaff)).Methods(http.MethodPost)
	r.HandleFunc("/update_staff", updateHandler(sr, "s_seq", staff.UpdateStaff)).Methods(http.MethodPost)
	r.HandleFunc("/delete_staff/{id}", deleteHandler(sr, staff.DeleteStaff)).Methods(http.MethodDelete)
	r.HandleFunc("/view_staff_image/{id}", imageHandler(sr, staff.GetStaffImage)).Methods(http.MethodGet)
	r.HandleFunc("/update_staff_image", updateImageHandler(sr, "s_seq", staff.UpdateStaffImage)).Methods(http.MethodPost)

	users := sr.store.Users
	r.HandleFunc("/select_users", listHandler(sr, users.ListUsers)).Methods(http.MethodGet)
	r.HandleFunc("/select_user/{id}", getHandler(sr, users.GetUser)).Methods(http.MethodGet)
	r.HandleFunc("/insert_user", createHandler(sr, users.CreateUser)).Methods(http.MethodPost)
	r.HandleFunc("/update_user", updateHandler(sr, "u_seq", users.UpdateUser)).Methods(http.MethodPost)
	r.HandleFunc("/delete_user/{id}", deleteHandler(sr, users.DeleteUser)).Methods(http.MethodDelete)
	r.HandleFunc("/view_user_image/{id}", imageHandler(sr, users.GetUserImage)).Methods(http.MethodGet)
	r.HandleFunc("/update_user_image", updateImageHandler(sr, "u_seq", users.UpdateUserImage)).Methods(http.MethodPost)

	r.HandleFunc("/select_categories/{kind}", sr.handleListCategories).Methods(http.MethodGet)
	r.HandleFunc("/insert_category/{kind}", sr.handleCreateCategory).Methods(http.MethodPost)
	r.HandleFunc("/delete_category/{kind}/{id}", sr.handleDeleteCategory).Methods(http.MethodDelete)

	return r
}

func (sr *StoreRouter) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := sr.store.Ping(ctx); err != nil {
		sr.log.Error().Err(err).Msg("Health check failed")
		sr.respondWithJSON(w, http.StatusServiceUnavailable, response.Error(string(service.KindInternal), "database unavailable"))
		return
	}
	sr.respondWithJSON(w, http.StatusOK, response.OK(0))
}

// handleSearch serves /select_search?maker=&kwds=&color=&kc_name=
func (sr *StoreRouter) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req request.ProductSearchRequest
	if err := decodeForm(w, r, &req); err != nil {
		sr.respondError(w, r, err)
		return
	}

	products, total, err := sr.store.Products.SearchProducts(r.Context(), req)
	if err != nil {
		sr.respondError(w, r, err)
		return
	}
	if products == nil {
		products = []response.ProductView{}
	}
	sr.respondWithJSON(w, http.StatusOK, response.List(products, total))
}

func categoryKind(r *http.Request) request.CategoryKind {
	return request.CategoryKind(mux.Vars(r)["kind"])
}

func (sr *StoreRouter) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := sr.store.Categories.ListCategories(r.Context(), categoryKind(r))
	if err != nil {
		sr.respondError(w, r, err)
		return
	}
	sr.respondWithJSON(w, http.StatusOK, response.List(categories, int64(len(categories))))
}

func (sr *StoreRouter) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := decodeForm(w, r, &req); err != nil {
		sr.respondError(w, r, err)
		return
	}

	category, err := sr.store.Categories.CreateCategory(r.Context(), categoryKind(r), req)
	if err != nil {
		sr.respondError(w, r, err)
		return
	}
	sr.respondWithJSON(w, http.StatusOK, response.OK(category.Seq))
}

func (sr *StoreRouter) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	key, err := pathKey(r)
	if err != nil {
		sr.respondError(w, r, err)
		return
	}

	if err := sr.store.Categories.DeleteCategory(r.Context(), categoryKind(r), key); err != nil {
		sr.respondError(w, r, err)
		return
	}
	sr.respondWithJSON(w, http.StatusOK, response.OK(key))
}
