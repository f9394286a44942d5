/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gateway

import "errors"

var (
	// ErrCommunication covers timeouts, connection errors, DNS failures and
	// non-2xx responses from the gateway. Retryable on the next cycle.
	ErrCommunication = errors.New("gateway communication failure")

	// ErrParse means the payload was still not valid JSON after repair.
	// Retryable on the next cycle.
	ErrParse = errors.New("gateway payload parse failure")

	// ErrAuthentication means the gateway rejected our credentials.
	// Not retryable; requires reconfiguration.
	ErrAuthentication = errors.New("gateway authentication failure")

	errUnexpectedStatusCode = errors.New("unexpected status code")
)
