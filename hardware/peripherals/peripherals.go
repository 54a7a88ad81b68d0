// This file is part of Gopher2Plus.
//
// Gopher2Plus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2Plus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2Plus.  If not, see <https://www.gnu.org/licenses/>.

// Package peripherals defines the interface common to all slot cards.
//
// A card registers its device registers with the memory's IO page when it is
// installed and keeps all of its state in the card instance. There are no
// package level device tables; the lifetime of a card's state is the lifetime
// of the machine it is installed in. The machine keeps a typed handle to each
// installed card and callers recover the concrete card type with a checked
// type assertion.
package peripherals

// Card is the interface implemented by all slot cards.
type Card interface {
	// ID returns the name of the card type
	ID() string

	// Reset the card to its power-on state. Mounted media survives a reset
	Reset()
}
