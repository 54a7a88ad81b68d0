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

// Package diskloader is used to specify the disk image to mount in a Disk II
// drive. The loader identifies the image convention from the file extension
// and loads the image data; the disk controller decides what to do with it
// from there.
package diskloader
