// Package procbarrier issues process-wide memory barriers through the
// Linux membarrier(2) syscall.
//
// Where package membarrier orders memory at a single call site,
// procbarrier asks the kernel to run the equivalent of a general barrier
// on every thread of the process (or every process on the system, for the
// global commands). The expedited commands trade a heavier syscall for not
// disturbing uninvolved CPUs; they must be registered once per process
// before use.
//
// On platforms without the syscall every command returns an error
// satisfying errors.Is(err, ErrUnsupported).
package procbarrier

// membarrier(2) commands, from include/uapi/linux/membarrier.h.
const (
	cmdQuery                            = 0
	cmdGlobal                           = 1 << 0
	cmdGlobalExpedited                  = 1 << 1
	cmdRegisterGlobalExpedited          = 1 << 2
	cmdPrivateExpedited                 = 1 << 3
	cmdRegisterPrivateExpedited         = 1 << 4
	cmdPrivateExpeditedSyncCore         = 1 << 5
	cmdRegisterPrivateExpeditedSyncCore = 1 << 6
)

// Supported reports whether the kernel provides membarrier(2) at all.
func Supported() bool {
	mask, err := Query()
	return err == nil && mask != 0
}

// Query returns the bitmask of membarrier commands the kernel supports.
func Query() (uint32, error) {
	return query()
}

// Global executes a memory barrier on all running threads of all
// processes. Heavy; prefer the expedited private commands for
// intra-process synchronization.
func Global() error {
	return barrier("GLOBAL", cmdGlobal)
}

// GlobalExpedited executes a memory barrier on all running threads of
// processes registered via RegisterGlobalExpedited.
func GlobalExpedited() error {
	return barrier("GLOBAL_EXPEDITED", cmdGlobalExpedited)
}

// RegisterGlobalExpedited registers the process to receive (and be
// permitted to issue) global expedited barriers.
func RegisterGlobalExpedited() error {
	return barrier("REGISTER_GLOBAL_EXPEDITED", cmdRegisterGlobalExpedited)
}

// PrivateExpedited executes a memory barrier on all running threads of the
// calling process. Fails until RegisterPrivateExpedited has been called.
func PrivateExpedited() error {
	return barrier("PRIVATE_EXPEDITED", cmdPrivateExpedited)
}

// RegisterPrivateExpedited registers the process for PrivateExpedited.
func RegisterPrivateExpedited() error {
	return barrier("REGISTER_PRIVATE_EXPEDITED", cmdRegisterPrivateExpedited)
}

// PrivateExpeditedSyncCore is PrivateExpedited plus a core serializing
// instruction on each thread, for cross-modifying code.
func PrivateExpeditedSyncCore() error {
	return barrier("PRIVATE_EXPEDITED_SYNC_CORE", cmdPrivateExpeditedSyncCore)
}

// RegisterPrivateExpeditedSyncCore registers the process for
// PrivateExpeditedSyncCore.
func RegisterPrivateExpeditedSyncCore() error {
	return barrier("REGISTER_PRIVATE_EXPEDITED_SYNC_CORE", cmdRegisterPrivateExpeditedSyncCore)
}
