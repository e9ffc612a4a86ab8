package constants

const (
	MAX_PAGE_SIZE                   = 100
	DEFAULT_PAYMENTS_LIMIT          = 50
	MAX_EXECUTION_DATES_PER_REQUEST = 100
	MAX_VAULT_NAME_LENGTH           = 100
	MAX_DESCRIPTION_LENGTH          = 1000
	MAX_RECIPIENT_NAME_LENGTH       = 100
	MAX_EMOJI_LENGTH                = 16
)
