package mcplog

import (
	"context"
	"errors"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/klog/v2"
)

// HandleK8sError logs Kubernetes API errors with a classification the operator can act on.
// Errors that do not originate from the API server are ignored.
func HandleK8sError(ctx context.Context, err error, operation string) {
	if err == nil {
		return
	}
	var status apierrors.APIStatus
	if !errors.As(err, &status) {
		return
	}
	logger := klog.FromContext(ctx).WithValues("operation", operation)
	switch {
	case apierrors.IsNotFound(err):
		logger.V(1).Info("Kubernetes resource not found", "error", err.Error())
	case apierrors.IsForbidden(err):
		logger.Info("Kubernetes permission denied, check the service account RBAC", "error", err.Error())
	case apierrors.IsUnauthorized(err):
		logger.Info("Kubernetes authentication failed, check the kubeconfig credentials", "error", err.Error())
	case apierrors.IsAlreadyExists(err), apierrors.IsConflict(err), apierrors.IsInvalid(err), apierrors.IsBadRequest(err):
		logger.V(1).Info("Kubernetes request rejected", "reason", apierrors.ReasonForError(err), "error", err.Error())
	case apierrors.IsTimeout(err), apierrors.IsServerTimeout(err):
		logger.Info("Kubernetes API server timed out", "error", err.Error())
	case apierrors.IsServiceUnavailable(err), apierrors.IsTooManyRequests(err):
		logger.Info("Kubernetes API server unavailable", "reason", apierrors.ReasonForError(err), "error", err.Error())
	default:
		logger.Error(err, "Kubernetes API error", "reason", apierrors.ReasonForError(err))
	}
}
