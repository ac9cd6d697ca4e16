package usecase

// Protocol responses. The wording is fixed output surface: clients (and the
// acceptance harness) match these strings byte for byte.
const (
	respLoginRequired      = "Login required."
	respLoginRequiredFirst = "Transaction rejected. Login required."
	respAlreadyLoggedIn    = "Already logged in."
	respMalformed          = "Malformed input."
	respNoSession          = "No active session."
	respFileWritten        = "Transaction file written."

	respInvalidAccountNumber = "Invalid account number."
	respAccountDeleted       = "Account no longer exists."
	respAccountCreated       = "Account unavailable this session."
	respAccountMissing       = "Account does not exist."
	respSourceMissing        = "Source account does not exist."
	respDestinationMissing   = "Destination account does not exist."
	respAccountDisabled      = "Account is disabled."
	respNotOwned             = "Account not owned by user."
	respSourceNotOwned       = "Source account not owned."
	respInvalidBillCompany   = "Invalid bill company."
	respInvalidAmount        = "Invalid amount format."
	respNegativeAmount       = "Negative amounts not allowed."
	respInsufficientFunds    = "Insufficient funds."

	respWithdrawalLimit = "Withdrawal exceeds session limit."
	respTransferLimit   = "Transfer exceeds session limit."
	respPaybillLimit    = "Paybill exceeds session limit."

	respWithdrawalAccepted = "Withdrawal accepted."
	respDepositAccepted    = "Deposit accepted."
	respTransferAccepted   = "Transfer accepted."
	respPaybillAccepted    = "Bill payment accepted."

	respNotPermitted    = "Privileged transaction not permitted."
	respNameTooLong     = "Account holder name too long."
	respBalanceTooHigh  = "Initial balance exceeds maximum."
	respDuplicateName   = "Duplicate account number."
	respCannotCreate    = "Cannot create account."
	respCreateRecorded  = "Account creation recorded."
	respHolderMismatch  = "Account holder name mismatch."
	respNumberMismatch  = "Account number mismatch."
	respDeleteRecorded  = "Account deletion recorded."
	respDisabledOK      = "Account disabled."
	respHolderOrAccount = "Invalid account or holder."
	respPlanChanged     = "Account plan changed."
	respUnknownCode     = "Unknown transaction code."
)
