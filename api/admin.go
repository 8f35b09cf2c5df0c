package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	expiringSoonWindow = 30 * 24 * time.Hour
	recentItemsLimit   = 10
)

//	@Summary		Get admin dashboard statistics
//	@Description	Totals for the admin home page. Revenue covers AMC and booking payments since the 1st of the month.
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{object}	db.AdminDashboard
//	@Router			/admin/dashboard [get]
func (server *Server) getAdminDashboard(c *gin.Context) {
	var resp db.AdminDashboard
	var amcRevenue, bookingRevenue int64

	now := server.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	g, ctx := errgroup.WithContext(c.Request.Context())

	// Goroutine 1: Get total customers
	g.Go(func() error {
		totalCustomers, err := server.dbStore.CountUsersByRole(ctx, db.UserRoleCustomer)
		if err != nil {
			return fmt.Errorf("failed to count customers: %w", err)
		}
		resp.TotalCustomers = totalCustomers
		return nil
	})

	// Goroutine 2: Get active vendors
	g.Go(func() error {
		totalActiveVendors, err := server.dbStore.CountActiveVendors(ctx)
		if err != nil {
			return fmt.Errorf("failed to count active vendors: %w", err)
		}
		resp.TotalActiveVendors = totalActiveVendors
		return nil
	})

	// Goroutine 3: Get active subscriptions
	g.Go(func() error {
		rows, err := server.dbStore.CountAMCSubscriptionsByStatus(ctx, time.Time{})
		if err != nil {
			return fmt.Errorf("failed to count subscriptions by status: %w", err)
		}
		for _, row := range rows {
			if row.Status == db.AmcSubscriptionStatusActive {
				resp.ActiveSubscriptions = row.Count
			}
		}
		return nil
	})

	// Goroutine 4: Get total and pending bookings
	g.Go(func() error {
		rows, err := server.dbStore.CountBookingsByStatus(ctx, time.Time{})
		if err != nil {
			return fmt.Errorf("failed to count bookings by status: %w", err)
		}
		for _, row := range rows {
			resp.TotalBookings += row.Count
			if row.Status == db.BookingStatusPending {
				resp.PendingBookings = row.Count
			}
		}
		return nil
	})

	// Goroutine 5: Get AMC revenue this month
	g.Go(func() error {
		revenue, err := server.dbStore.GetAMCRevenue(ctx, monthStart)
		if err != nil {
			return fmt.Errorf("failed to get amc revenue this month: %w", err)
		}
		amcRevenue = revenue
		return nil
	})

	// Goroutine 6: Get booking revenue this month
	g.Go(func() error {
		revenue, err := server.dbStore.GetBookingRevenue(ctx, monthStart)
		if err != nil {
			return fmt.Errorf("failed to get booking revenue this month: %w", err)
		}
		bookingRevenue = revenue
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Err(err).Msg("failed to build admin dashboard")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	resp.RevenueThisMonth = amcRevenue + bookingRevenue

	c.JSON(http.StatusOK, successResponse(resp))
}

type statsQuery struct {
	Period string `form:"period,default=month"`
}

func (server *Server) bindStatsPeriod(c *gin.Context) (string, time.Time, bool) {
	var query statsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return "", time.Time{}, false
	}

	since, err := util.PeriodStart(query.Period, server.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return "", time.Time{}, false
	}

	return query.Period, since, true
}

//	@Summary		Get AMC statistics
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			period	query		string	false	"week, month, year or all"	default(month)
//	@Success		200		{object}	db.AMCStats
//	@Failure		400		{object}	Response
//	@Router			/admin/amc/stats [get]
func (server *Server) getAMCStats(c *gin.Context) {
	period, since, ok := server.bindStatsPeriod(c)
	if !ok {
		return
	}

	resp := db.AMCStats{
		Period:         period,
		CountsByStatus: make(map[string]int64),
	}

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		rows, err := server.dbStore.CountAMCSubscriptionsByStatus(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to count subscriptions by status: %w", err)
		}
		for _, row := range rows {
			resp.CountsByStatus[string(row.Status)] = row.Count
			resp.TotalSubscriptions += row.Count
		}
		return nil
	})

	g.Go(func() error {
		revenue, err := server.dbStore.GetAMCRevenue(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to get amc revenue: %w", err)
		}
		resp.Revenue = revenue
		return nil
	})

	g.Go(func() error {
		expiringSoon, err := server.dbStore.CountExpiringAMCSubscriptions(ctx, server.now().Add(expiringSoonWindow))
		if err != nil {
			return fmt.Errorf("failed to count expiring subscriptions: %w", err)
		}
		resp.ExpiringSoon = expiringSoon
		return nil
	})

	g.Go(func() error {
		totalPlans, err := server.dbStore.CountAMCPlans(ctx)
		if err != nil {
			return fmt.Errorf("failed to count plans: %w", err)
		}
		resp.TotalPlans = totalPlans
		return nil
	})

	g.Go(func() error {
		recent, err := server.dbStore.ListRecentAMCSubscriptions(ctx, recentItemsLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent subscriptions: %w", err)
		}
		resp.RecentSubscriptions = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Err(err).Msg("failed to build amc stats")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	c.JSON(http.StatusOK, successResponse(resp))
}

//	@Summary		Get booking statistics
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			period	query		string	false	"week, month, year or all"	default(month)
//	@Success		200		{object}	db.BookingStats
//	@Failure		400		{object}	Response
//	@Router			/admin/bookings/stats [get]
func (server *Server) getBookingStats(c *gin.Context) {
	period, since, ok := server.bindStatsPeriod(c)
	if !ok {
		return
	}

	resp := db.BookingStats{
		Period:         period,
		CountsByStatus: make(map[string]int64),
	}

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		rows, err := server.dbStore.CountBookingsByStatus(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to count bookings by status: %w", err)
		}
		for _, row := range rows {
			resp.CountsByStatus[string(row.Status)] = row.Count
		}
		return nil
	})

	g.Go(func() error {
		total, err := server.dbStore.CountBookings(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to count bookings: %w", err)
		}
		resp.TotalBookings = total
		return nil
	})

	g.Go(func() error {
		revenue, err := server.dbStore.GetBookingRevenue(ctx, since)
		if err != nil {
			return fmt.Errorf("failed to get booking revenue: %w", err)
		}
		resp.Revenue = revenue
		return nil
	})

	g.Go(func() error {
		recent, err := server.dbStore.ListRecentBookings(ctx, recentItemsLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent bookings: %w", err)
		}
		resp.RecentBookings = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Err(err).Msg("failed to build booking stats")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	c.JSON(http.StatusOK, successResponse(resp))
}
