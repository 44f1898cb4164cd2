package apperrors

var (
	ErrUserNotFound          = NotFound("user not found")
	ErrFriendRequestNotFound = NotFound("friend request not found")
	ErrNotFriends            = Forbidden("403: Forbidden - Not friends")
	ErrNotRequestRecipient   = Forbidden("only the recipient can answer a friend request")
	ErrSelfFriendRequest     = SelfRequest("cannot send a friend request to yourself")
	ErrRequestAlreadyPending = Conflict("a pending friend request already exists between these users")
	ErrAlreadyFriends        = Conflict("users are already friends")
	ErrRequestNotPending     = Conflict("friend request is no longer pending")
	ErrEmailTaken            = Conflict("user with this email already registered")
	ErrInvalidCredentials    = Unauthorized("invalid email or password")
	ErrInvalidToken          = Unauthorized("invalid or expired token")
	ErrFirebaseDisabled      = Provider("firebase authentication is not configured", nil)
)
