package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire values for the enumerated fields. The server rejects anything else.
const (
	KindChecking   = "CHECKING"
	KindSavings    = "SAVINGS"
	KindInvestment = "INVESTMENT"

	DirectionInflow  = "INFLOW"
	DirectionOutflow = "OUTFLOW"

	TransactionPending   = "PENDING"
	TransactionCompleted = "COMPLETED"
	TransactionCanceled  = "CANCELED"

	GoalInProgress = "IN_PROGRESS"
	GoalCompleted  = "COMPLETED"
	GoalPaused     = "PAUSED"
	GoalCanceled   = "CANCELED"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"

	DeadlineExpired  = "EXPIRED"
	DeadlineToday    = "TODAY"
	DeadlineUpcoming = "UPCOMING"
)

// LoginRequest carries the credentials for Login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest is the payload for Register.
type CreateUserRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	CPF           string          `json:"cpf"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	Password      string          `json:"password"`
}

// UpdateUserRequest is the payload for UpdateUser. Nil fields are left
// untouched on the server.
type UpdateUserRequest struct {
	Name          *string          `json:"name,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Address       *string          `json:"address,omitempty"`
	MonthlyIncome *decimal.Decimal `json:"monthlyIncome,omitempty"`
}

// UserResponse is a user as returned by the server.
type UserResponse struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	CPF           string          `json:"cpf"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome"`
	RegisteredAt  time.Time       `json:"registeredAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// CreateAccountRequest is the payload for CreateAccount.
type CreateAccountRequest struct {
	UserID        string          `json:"userID"`
	BankName      string          `json:"bankName"`
	BranchCode    string          `json:"branchCode,omitempty"`
	AccountNumber string          `json:"accountNumber"`
	Kind          string          `json:"kind"`
	Balance       decimal.Decimal `json:"balance"`
	OpenedAt      *time.Time      `json:"openedAt,omitempty"`
}

// UpdateAccountRequest is the payload for UpdateAccount. Nil fields are left
// untouched on the server.
type UpdateAccountRequest struct {
	BankName      *string          `json:"bankName,omitempty"`
	BranchCode    *string          `json:"branchCode,omitempty"`
	AccountNumber *string          `json:"accountNumber,omitempty"`
	Kind          *string          `json:"kind,omitempty"`
	Balance       *decimal.Decimal `json:"balance,omitempty"`
	IsActive      *bool            `json:"isActive,omitempty"`
}

// AccountResponse is a bank account as returned by the server.
type AccountResponse struct {
	AccountID     string          `json:"accountID"`
	UserID        string          `json:"userID"`
	BankName      string          `json:"bankName"`
	BranchCode    string          `json:"branchCode"`
	AccountNumber string          `json:"accountNumber"`
	Kind          string          `json:"kind"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	OpenedAt      *time.Time      `json:"openedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// CreateTransactionRequest is the payload for CreateTransaction.
type CreateTransactionRequest struct {
	AccountID     string          `json:"accountID"`
	Direction     string          `json:"direction"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	OccurredAt    *time.Time      `json:"occurredAt,omitempty"`
}

// UpdateTransactionRequest is the payload for UpdateTransaction. Nil fields
// are left untouched on the server.
type UpdateTransactionRequest struct {
	Direction     *string          `json:"direction,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Status        *string          `json:"status,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	OccurredAt    *time.Time       `json:"occurredAt,omitempty"`
}

// TransactionResponse is a transaction as returned by the server.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Direction     string          `json:"direction"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	OccurredAt    *time.Time      `json:"occurredAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsParams selects and pages transactions. At most one filter
// is applied on the server; AccountID wins over Direction, then Category,
// then Status.
type ListTransactionsParams struct {
	Limit     int
	Offset    int
	AccountID string
	Direction string
	Category  string
	Status    string
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CreateGoalRequest is the payload for CreateGoal.
type CreateGoalRequest struct {
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	TargetDate    time.Time       `json:"targetDate"`
	Status        string          `json:"status,omitempty"`
	Priority      string          `json:"priority,omitempty"`
}

// UpdateGoalRequest is the payload for UpdateGoal. Nil fields are left
// untouched on the server.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	StartDate     *time.Time       `json:"startDate,omitempty"`
	TargetDate    *time.Time       `json:"targetDate,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Priority      *string          `json:"priority,omitempty"`
}

// GoalResponse is a savings goal as returned by the server. The completion
// percentage, remaining amount and deadline fields are derived server side
// and cannot be written.
type GoalResponse struct {
	GoalID                   string          `json:"goalID"`
	UserID                   string          `json:"userID"`
	Name                     string          `json:"name"`
	Description              string          `json:"description"`
	TargetAmount             decimal.Decimal `json:"targetAmount"`
	CurrentAmount            decimal.Decimal `json:"currentAmount"`
	RemainingAmount          decimal.Decimal `json:"remainingAmount"`
	RemainingAmountDisplay   string          `json:"remainingAmountDisplay"`
	CompletionPercent        decimal.Decimal `json:"completionPercent"`
	CompletionPercentDisplay string          `json:"completionPercentDisplay"`
	StartDate                *time.Time      `json:"startDate,omitempty"`
	TargetDate               time.Time       `json:"targetDate"`
	TargetDateDisplay        string          `json:"targetDateDisplay"`
	RemainingDays            int             `json:"remainingDays"`
	Deadline                 string          `json:"deadline"`
	Status                   string          `json:"status"`
	Priority                 string          `json:"priority"`
	CreatedAt                time.Time       `json:"createdAt"`
	LastUpdatedAt            time.Time       `json:"lastUpdatedAt"`
}

// ListGoalsParams selects and pages goals. At most one filter is applied on
// the server; Status wins over Priority.
type ListGoalsParams struct {
	Limit    int
	Offset   int
	Status   string
	Priority string
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// DashboardResponse is the aggregated dashboard view. FailedLoads names the
// sections that could not be loaded, so an empty section can be told apart
// from a failed one.
type DashboardResponse struct {
	TotalBalance           decimal.Decimal       `json:"totalBalance"`
	AccountCount           int                   `json:"accountCount"`
	RecentTransactionCount int                   `json:"recentTransactionCount"`
	ActiveGoalCount        int                   `json:"activeGoalCount"`
	RecentTransactions     []TransactionResponse `json:"recentTransactions"`
	ActiveGoals            []GoalResponse        `json:"activeGoals"`
	FailedLoads            []string              `json:"failedLoads,omitempty"`
}
