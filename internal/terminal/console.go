package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go-gin-parking/internal/model"
	"go-gin-parking/internal/service"
	apperrors "go-gin-parking/pkg/app_errors"
	"go-gin-parking/pkg/logger"

	"go.uber.org/zap"
)

const timeLayout = "2006-01-02 15:04:05"

// Console 入口/出口操作員的互動式終端機
type Console struct {
	service service.ParkingService
	in      *bufio.Scanner
	out     io.Writer
	now     func() time.Time
}

func NewConsole(service service.ParkingService, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		now:     time.Now,
	}
}

// Run 主選單迴圈；選擇關機、輸入結束或 ctx 取消時返回
func (c *Console) Run(ctx context.Context) error {
	c.println("Parking terminal ready.")
	for {
		if ctx.Err() != nil {
			return nil
		}
		c.println("")
		c.println("Choose an action:")
		c.println("  1  Vehicle entering (allocate a spot)")
		c.println("  2  Vehicle exiting (charge the fare)")
		c.println("  3  Shut down terminal")

		choice, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}
		switch choice {
		case "1":
			c.incoming(ctx)
		case "2":
			c.exiting(ctx)
		case "3":
			c.println("Terminal shut down.")
			return nil
		default:
			c.println("Unknown option, enter 1, 2 or 3.")
		}
	}
}

func (c *Console) incoming(ctx context.Context) {
	category, ok := c.askCategory()
	if !ok {
		return
	}
	reg, ok := c.askRegistration()
	if !ok {
		return
	}

	result, err := c.service.Admit(ctx, reg, category, c.now())
	if err != nil {
		c.reportError("admit", err)
		return
	}
	c.printf("Ticket %s issued.\n", result.TicketNumber)
	c.printf("Park in spot %d (%s).\n", result.SpotID, result.Category)
	c.printf("Entry of %s recorded at %s.\n", result.VehicleRegNumber, result.InTime.Format(timeLayout))
}

func (c *Console) exiting(ctx context.Context) {
	reg, ok := c.askRegistration()
	if !ok {
		return
	}

	result, err := c.service.Release(ctx, reg, c.now())
	if err != nil {
		c.reportError("release", err)
		return
	}
	if result.Recurring {
		c.println("Welcome back, recurring-user discount applied.")
	}
	c.printf("Fare due: %.2f\n", result.Price)
	c.printf("Exit of %s recorded at %s, spot %d is free.\n",
		result.VehicleRegNumber, result.OutTime.Format(timeLayout), result.SpotID)
}

// askCategory 重複詢問直到輸入合法車種
func (c *Console) askCategory() (model.VehicleCategory, bool) {
	for {
		c.println("Vehicle type:")
		for i, category := range model.VehicleCategories {
			c.printf("  %d  %s\n", i+1, category)
		}
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		category, err := model.ParseVehicleCategory(line)
		if err == nil {
			return category, true
		}
		c.println("Unknown vehicle type, try again.")
	}
}

func (c *Console) askRegistration() (string, bool) {
	for {
		c.println("Vehicle registration number:")
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		if line != "" {
			return line, true
		}
		c.println("Registration number cannot be empty.")
	}
}

func (c *Console) reportError(operation string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAdmissionAborted):
		c.println("Entry could not be completed, please try again.")
	case errors.Is(err, apperrors.ErrAlreadyParked):
		c.println("This vehicle is already inside the lot.")
	case errors.Is(err, apperrors.ErrLotFull):
		c.println("No free spot for this vehicle type, the lot is full.")
	case errors.Is(err, apperrors.ErrNotParked):
		c.println("No open ticket for this vehicle.")
	case errors.Is(err, apperrors.ErrUpdateFailed):
		c.println("Ticket was closed by another terminal.")
	case errors.Is(err, apperrors.ErrInvalidInterval):
		c.println("Exit time is before the recorded entry time.")
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.println("Invalid input.")
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.println("Parking system temporarily unavailable, please try again.")
	default:
		c.println("Unexpected error, please contact support.")
	}
	logger.WithComponent("terminal").Warn("operation failed", zap.String("operation", operation), zap.Error(err))
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
