package friendstate

import (
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/sirupsen/logrus"
)

func notify(notifier Notifier, logger logrus.FieldLogger, userID, friendID model.UserID) {
	n := model.NewNotification(model.EventNewFriend, userID, friendID)
	if err := notifier.Notify(n); err != nil {
		logger.WithFields(logrus.Fields{
			"userid":   userID,
			"friendid": friendID,
			"error":    err,
		}).Warn("failed to deliver notification")
	}
}

// Caller checks IsFriend itself before calling UseCase.MarkAsFriend.
type Caller struct {
	useCase  *UseCase
	notifier Notifier
	logger   logrus.FieldLogger
}

// NewCaller ...
func NewCaller(useCase *UseCase, notifier Notifier, logger logrus.FieldLogger) *Caller {
	return &Caller{useCase: useCase, notifier: notifier, logger: logger}
}

// AddFriendIfNotYet ...
func (c *Caller) AddFriendIfNotYet(id model.UserID) error {
	isFriend, err := c.useCase.IsFriend(id)
	if err != nil {
		return err
	}
	if !isFriend {
		return c.useCase.MarkAsFriend(id)
	}

	return nil
}

// AddFriendWithEvent shows the popup after the check passed. A concurrent
// caller can win between IsFriend and MarkAsFriend, which surfaces here as
// ErrAlreadyFriend.
func (c *Caller) AddFriendWithEvent(id model.UserID) error {
	isFriend, err := c.useCase.IsFriend(id)
	if err != nil {
		return err
	}
	if isFriend {
		return nil
	}

	if err := c.useCase.MarkAsFriend(id); err != nil {
		return err
	}
	notify(c.notifier, c.logger, c.useCase.currentUserID, id)

	return nil
}

// IdempotentCaller ...
type IdempotentCaller struct {
	useCase *IdempotentUseCase
}

// NewIdempotentCaller ...
func NewIdempotentCaller(useCase *IdempotentUseCase) *IdempotentCaller {
	return &IdempotentCaller{useCase: useCase}
}

// AddFriendIfNotYet ...
func (c *IdempotentCaller) AddFriendIfNotYet(id model.UserID) error {
	return c.useCase.MarkAsFriend(id)
}

// AddFriendIfNotYetWithExplicitName ...
func (c *IdempotentCaller) AddFriendIfNotYetWithExplicitName(id model.UserID) error {
	return c.useCase.MarkAsFriendIfNotYet(id)
}

// ReportingCaller shows the popup based on the value MarkAsFriend returns.
type ReportingCaller struct {
	useCase  *ReportingUseCase
	notifier Notifier
	logger   logrus.FieldLogger
}

// NewReportingCaller ...
func NewReportingCaller(useCase *ReportingUseCase, notifier Notifier, logger logrus.FieldLogger) *ReportingCaller {
	return &ReportingCaller{useCase: useCase, notifier: notifier, logger: logger}
}

// AddFriendWithEvent returns whether the friendship was created. The
// notification is sent only in that case.
func (c *ReportingCaller) AddFriendWithEvent(id model.UserID) (bool, error) {
	isNewlyMarkedAsFriend, err := c.useCase.MarkAsFriend(id)
	if err != nil {
		return false, err
	}
	if isNewlyMarkedAsFriend {
		notify(c.notifier, c.logger, c.useCase.currentUserID, id)
	}

	return isNewlyMarkedAsFriend, nil
}

// AddFriendWithEventCallback ...
func (c *ReportingCaller) AddFriendWithEventCallback(id model.UserID) error {
	return c.useCase.MarkAsFriendWithCallback(id, func() {
		notify(c.notifier, c.logger, c.useCase.currentUserID, id)
	})
}
