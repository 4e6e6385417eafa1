package apierrors

const (
	MsgRouteNotFound       = "routeNotFound"
	MsgTokenRequired       = "tokenRequired"
	MsgInvalidToken        = "invalidToken"
	MsgInvalidRegister     = "invalidRegisterPayload"
	MsgInvalidLogin        = "invalidLoginPayload"
	MsgUserExists          = "userExists"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgUserNotFound        = "userNotFound"
	MsgUserForbidden       = "userForbidden"
	MsgFailRegister        = "failRegister"
	MsgFailLogin           = "failLogin"
	MsgFailListUsers       = "failListUsers"
	MsgFailGetUser         = "failGetUser"
	MsgFailUpdateUser      = "failUpdateUser"
	MsgFailDeleteUser      = "failDeleteUser"
	MsgCategoryNameNeeded  = "categoryNameRequired"
	MsgCategoryExists      = "categoryExists"
	MsgCategoryNotFound    = "categoryNotFound"
	MsgFailListCategories  = "failListCategories"
	MsgFailGetCategory     = "failGetCategory"
	MsgFailCreateCategory  = "failCreateCategory"
	MsgFailUpdateCategory  = "failUpdateCategory"
	MsgFailDeleteCategory  = "failDeleteCategory"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgTaskTitleRequired   = "taskTitleRequired"
	MsgInvalidTaskCategory = "invalidTaskCategory"
	MsgInvalidTaskStatus   = "invalidTaskStatus"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailListTasks       = "failListTasks"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
)
