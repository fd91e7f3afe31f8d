// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	_ "embed"
)

// The default anchors are the two literal comment lines that delimit
// the stylist-notification region in the appointments route. They must
// stay byte-for-byte identical to the target file's comments or the
// patch aborts.
const (
	DefaultTarget = "backend/src/routes/appointments.js"

	DefaultStartMarker = "// Notificar al estilista si existe mapping user_id"

	DefaultEndMarker = "// Notificar al cliente por push (si tiene token registrado en customer_app_settings)"

	DefaultFileFilterGlob = "**/*.js"
)

// DefaultReplacement is the notification block spliced in place of the
// anchored region. Opaque payload: it is never parsed or validated as
// JavaScript.
//
//go:embed notify_block.js
var DefaultReplacement string
